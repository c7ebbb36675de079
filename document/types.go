package document

// BlockType tags the variant carried by a Block. The tag is immutable once a
// block is created; changing type means replacing the block.
type BlockType string

const (
	TypeHeading   BlockType = "heading"
	TypeParagraph BlockType = "paragraph"
	TypeLink      BlockType = "link"
	TypeImage     BlockType = "image"
	TypeList      BlockType = "list"
	TypeTable     BlockType = "table"
	TypeFile      BlockType = "file"
	TypeVideo     BlockType = "video"
	TypePageLink  BlockType = "page-link"
)

// BlockTypes lists every supported block type in a stable order.
var BlockTypes = []BlockType{
	TypeHeading,
	TypeParagraph,
	TypeLink,
	TypeImage,
	TypeList,
	TypeTable,
	TypeFile,
	TypeVideo,
	TypePageLink,
}

// Valid reports whether the type is one of the supported block variants.
func (t BlockType) Valid() bool {
	switch t {
	case TypeHeading, TypeParagraph, TypeLink, TypeImage, TypeList,
		TypeTable, TypeFile, TypeVideo, TypePageLink:
		return true
	}
	return false
}

// TextAlign enumerates the horizontal alignment options for text blocks.
type TextAlign string

const (
	AlignLeft    TextAlign = "left"
	AlignCenter  TextAlign = "center"
	AlignRight   TextAlign = "right"
	AlignJustify TextAlign = "justify"
)

// Valid reports whether the alignment is one of the supported values.
func (a TextAlign) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}

// LinkTarget enumerates the browsing-context targets for link blocks.
type LinkTarget string

const (
	TargetBlank LinkTarget = "_blank"
	TargetSelf  LinkTarget = "_self"
)

// Valid reports whether the target is one of the supported values.
func (t LinkTarget) Valid() bool {
	return t == TargetBlank || t == TargetSelf
}

// Props is the closed union of type-specific block properties. Exactly one
// concrete props type corresponds to each BlockType.
type Props interface {
	blockProps() BlockType
}

// HeadingProps configures heading blocks.
type HeadingProps struct {
	Level     int       `json:"level"`
	Color     string    `json:"color,omitempty"`
	TextAlign TextAlign `json:"textAlign,omitempty"`
}

// ParagraphProps configures paragraph blocks.
type ParagraphProps struct {
	TextIndent bool      `json:"textIndent,omitempty"`
	TextAlign  TextAlign `json:"textAlign,omitempty"`
}

// LinkProps configures external link blocks.
type LinkProps struct {
	Href   string     `json:"href,omitempty"`
	Target LinkTarget `json:"target,omitempty"`
}

// ImageProps configures image blocks.
type ImageProps struct {
	Src string `json:"src,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// ListProps configures list blocks.
type ListProps struct {
	Items []string `json:"items"`
}

// TableProps configures table blocks. Every row carries exactly
// len(Headers) cells at all times.
type TableProps struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// FileProps configures downloadable attachment blocks.
type FileProps struct {
	FileName string `json:"fileName,omitempty"`
	FileURL  string `json:"fileUrl,omitempty"`
	FileType string `json:"fileType,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`
}

// VideoProps configures embedded video blocks.
type VideoProps struct {
	VideoSrc    string `json:"videoSrc,omitempty"`
	VideoTitle  string `json:"videoTitle,omitempty"`
	VideoWidth  int    `json:"videoWidth,omitempty"`
	VideoHeight int    `json:"videoHeight,omitempty"`
	Controls    bool   `json:"controls"`
	Autoplay    bool   `json:"autoplay,omitempty"`
	Loop        bool   `json:"loop,omitempty"`
	Muted       bool   `json:"muted,omitempty"`
}

// PageLinkProps configures internal page link blocks.
type PageLinkProps struct {
	PageSlug  string `json:"pageSlug,omitempty"`
	PageTitle string `json:"pageTitle,omitempty"`
	LinkText  string `json:"linkText,omitempty"`
}

func (HeadingProps) blockProps() BlockType   { return TypeHeading }
func (ParagraphProps) blockProps() BlockType { return TypeParagraph }
func (LinkProps) blockProps() BlockType      { return TypeLink }
func (ImageProps) blockProps() BlockType     { return TypeImage }
func (ListProps) blockProps() BlockType      { return TypeList }
func (*TableProps) blockProps() BlockType    { return TypeTable }
func (FileProps) blockProps() BlockType      { return TypeFile }
func (VideoProps) blockProps() BlockType     { return TypeVideo }
func (PageLinkProps) blockProps() BlockType  { return TypePageLink }

// PropsTypeOf returns the block type a props value belongs to, or the empty
// type for nil props.
func PropsTypeOf(p Props) BlockType {
	if p == nil {
		return ""
	}
	return p.blockProps()
}

// Row is one table row. Cells always matches the owning table's header count.
type Row struct {
	ID    string `json:"id"`
	Cells []Cell `json:"cells"`
}

// Block is one addressable unit of content within a Document.
type Block struct {
	ID        string
	Type      BlockType
	Content   string
	Props     Props
	IsPrivate bool
}

// DefaultProps returns the type-appropriate default properties assigned when
// a block of the given type is created.
func DefaultProps(t BlockType) Props {
	switch t {
	case TypeHeading:
		return HeadingProps{Level: 2, Color: "#000000", TextAlign: AlignLeft}
	case TypeParagraph:
		return ParagraphProps{TextAlign: AlignLeft}
	case TypeLink:
		return LinkProps{Target: TargetBlank}
	case TypeImage:
		return ImageProps{}
	case TypeList:
		return ListProps{Items: []string{""}}
	case TypeTable:
		return &TableProps{Headers: []string{""}, Rows: nil}
	case TypeFile:
		return FileProps{}
	case TypeVideo:
		return VideoProps{Controls: true}
	case TypePageLink:
		return PageLinkProps{}
	default:
		return nil
	}
}

package editor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/upload"
)

func waitForPending(t *testing.T, session *Session, blockID string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !session.UploadPending(blockID) {
		if time.Now().After(deadline) {
			t.Fatal("upload never entered the pending state")
		}
		time.Sleep(time.Millisecond)
	}
}

func imageAsset(name string, size int64) upload.Asset {
	return upload.Asset{
		FileName:    name,
		ContentType: "image/png",
		Size:        size,
		Data:        strings.NewReader("png-bytes"),
	}
}

func TestUploadAssetPatchesImageProps(t *testing.T) {
	uploader := upload.NewMemoryUploader()
	session := NewSession(nil, WithIDGenerator(sequentialIDs("blk")), WithUploader(uploader))
	block, _ := session.AddBlock(document.TypeImage)

	err := session.UploadAsset(context.Background(), block.ID, imageAsset("team.png", 1024))
	if err != nil {
		t.Fatalf("UploadAsset returned error: %v", err)
	}

	props := session.Document().Block(block.ID).Props.(document.ImageProps)
	if props.Src == "" {
		t.Fatal("expected src patched with uploaded url")
	}
	if props.Alt != "team.png" {
		t.Fatalf("expected alt defaulted to file name, got %q", props.Alt)
	}
	if _, ok := uploader.Stored(props.Src); !ok {
		t.Fatalf("expected payload stored under %q", props.Src)
	}
	if session.UploadPending(block.ID) {
		t.Fatal("expected pending state cleared after completion")
	}
}

func TestUploadAssetPatchesFileProps(t *testing.T) {
	uploader := upload.NewMemoryUploader()
	session := NewSession(nil, WithIDGenerator(sequentialIDs("blk")), WithUploader(uploader))
	block, _ := session.AddBlock(document.TypeFile)

	asset := upload.Asset{
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		Size:        2048,
		Data:        strings.NewReader("pdf-bytes"),
	}
	if err := session.UploadAsset(context.Background(), block.ID, asset); err != nil {
		t.Fatalf("UploadAsset returned error: %v", err)
	}

	props := session.Document().Block(block.ID).Props.(document.FileProps)
	if props.FileName != "report.pdf" || props.FileType != "application/pdf" || props.FileSize != 2048 {
		t.Fatalf("unexpected file props: %#v", props)
	}
	if props.FileURL == "" {
		t.Fatal("expected file url patched")
	}
}

func TestUploadAssetRejectsOversizedImage(t *testing.T) {
	session := NewSession(nil,
		WithIDGenerator(sequentialIDs("blk")),
		WithUploader(upload.NewMemoryUploader()))
	block, _ := session.AddBlock(document.TypeImage)

	err := session.UploadAsset(context.Background(), block.ID, imageAsset("huge.png", MaxImageSize+1))
	if !errors.Is(err, ErrAssetTooLarge) {
		t.Fatalf("expected ErrAssetTooLarge, got %v", err)
	}
}

func TestUploadAssetRejectsWrongContentType(t *testing.T) {
	session := NewSession(nil,
		WithIDGenerator(sequentialIDs("blk")),
		WithUploader(upload.NewMemoryUploader()))
	block, _ := session.AddBlock(document.TypeImage)

	asset := upload.Asset{FileName: "notes.txt", ContentType: "text/plain", Size: 10, Data: strings.NewReader("x")}
	err := session.UploadAsset(context.Background(), block.ID, asset)
	if !errors.Is(err, ErrAssetTypeInvalid) {
		t.Fatalf("expected ErrAssetTypeInvalid, got %v", err)
	}
}

func TestUploadAssetUnsupportedBlockType(t *testing.T) {
	session := NewSession(nil,
		WithIDGenerator(sequentialIDs("blk")),
		WithUploader(upload.NewMemoryUploader()))
	block, _ := session.AddBlock(document.TypeParagraph)

	err := session.UploadAsset(context.Background(), block.ID, imageAsset("a.png", 10))
	if !errors.Is(err, ErrUploadUnsupported) {
		t.Fatalf("expected ErrUploadUnsupported, got %v", err)
	}
}

func TestUploadAssetRequiresUploader(t *testing.T) {
	session := NewSession(nil, WithIDGenerator(sequentialIDs("blk")))
	block, _ := session.AddBlock(document.TypeImage)

	err := session.UploadAsset(context.Background(), block.ID, imageAsset("a.png", 10))
	if !errors.Is(err, ErrUploaderRequired) {
		t.Fatalf("expected ErrUploaderRequired, got %v", err)
	}
}

func TestUploadAssetFailureLeavesDocumentUnchanged(t *testing.T) {
	uploader := upload.NewMemoryUploader()
	uploader.Err = upload.ErrUploadFailed
	session := NewSession(nil, WithIDGenerator(sequentialIDs("blk")), WithUploader(uploader))
	block, _ := session.AddBlock(document.TypeImage)

	err := session.UploadAsset(context.Background(), block.ID, imageAsset("a.png", 10))
	if !errors.Is(err, upload.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}

	props := session.Document().Block(block.ID).Props.(document.ImageProps)
	if props.Src != "" {
		t.Fatalf("expected props untouched after failure, got %#v", props)
	}
	if session.UploadPending(block.ID) {
		t.Fatal("expected pending state cleared after failure")
	}
}

func TestUploadAssetStaleBlockIsNoOp(t *testing.T) {
	session := NewSession(nil,
		WithIDGenerator(sequentialIDs("blk")),
		WithUploader(upload.NewMemoryUploader()))

	if err := session.UploadAsset(context.Background(), "missing", imageAsset("a.png", 10)); err != nil {
		t.Fatalf("expected stale upload to be a no-op, got %v", err)
	}
}

// blockingUploader parks Upload until released so tests can observe the
// in-flight state.
type blockingUploader struct {
	release chan struct{}
	result  upload.Result
}

func (b *blockingUploader) Upload(context.Context, upload.Field, upload.Asset) (*upload.Result, error) {
	<-b.release
	result := b.result
	return &result, nil
}

func TestUpdateBlockedWhileUploadInFlight(t *testing.T) {
	uploader := &blockingUploader{release: make(chan struct{}), result: upload.Result{URL: "/assets/a.png"}}
	session := NewSession(nil, WithIDGenerator(sequentialIDs("blk")), WithUploader(uploader))
	imageBlock, _ := session.AddBlock(document.TypeImage)
	otherBlock, _ := session.AddBlock(document.TypeParagraph)

	done := make(chan error, 1)
	go func() {
		done <- session.UploadAsset(context.Background(), imageBlock.ID, imageAsset("a.png", 10))
	}()

	waitForPending(t, session, imageBlock.ID)

	content := "blocked"
	if err := session.UpdateBlock(imageBlock.ID, BlockPatch{Content: &content}); !errors.Is(err, ErrUploadInFlight) {
		t.Fatalf("expected ErrUploadInFlight, got %v", err)
	}

	// Other blocks stay editable while the upload is pending.
	if err := session.UpdateBlock(otherBlock.ID, BlockPatch{Content: &content}); err != nil {
		t.Fatalf("expected other block editable, got %v", err)
	}

	close(uploader.release)
	if err := <-done; err != nil {
		t.Fatalf("UploadAsset returned error: %v", err)
	}

	props := session.Document().Block(imageBlock.ID).Props.(document.ImageProps)
	if props.Src != "/assets/a.png" {
		t.Fatalf("expected src patched after release, got %q", props.Src)
	}
}

func TestUploadResultDiscardedWhenBlockDeleted(t *testing.T) {
	uploader := &blockingUploader{release: make(chan struct{}), result: upload.Result{URL: "/assets/a.png"}}
	session := NewSession(nil, WithIDGenerator(sequentialIDs("blk")), WithUploader(uploader))
	block, _ := session.AddBlock(document.TypeImage)

	done := make(chan error, 1)
	go func() {
		done <- session.UploadAsset(context.Background(), block.ID, imageAsset("a.png", 10))
	}()

	waitForPending(t, session, block.ID)
	session.DeleteBlock(block.ID)
	close(uploader.release)

	if err := <-done; err != nil {
		t.Fatalf("expected discarded result, got error %v", err)
	}
	if len(session.Document()) != 0 {
		t.Fatal("expected document empty after deletion")
	}
}

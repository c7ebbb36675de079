package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	blockdoc "github.com/goliatone/go-blockdoc"
	"github.com/goliatone/go-blockdoc/document"
	"github.com/goliatone/go-blockdoc/editor"
	"github.com/goliatone/go-blockdoc/i18n"
	"github.com/goliatone/go-blockdoc/render"
)

const demoPage = `---
title: Team Handbook
slug: team-handbook
---

# Welcome

This page is assembled from markdown and then edited block by block.

- Onboarding checklist
- Expense policy

| Name | Role |
| ---- | ---- |
| Ada  | Lead |
`

func main() {
	ctx := context.Background()

	cfg := blockdoc.DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	module, err := blockdoc.New(cfg)
	if err != nil {
		log.Fatalf("build module: %v", err)
	}

	if _, err := module.Importer().ImportSource(ctx, []byte(demoPage)); err != nil {
		log.Fatalf("import markdown: %v", err)
	}

	session, err := module.EditSession(ctx, "team-handbook", i18n.LocaleDefault)
	if err != nil {
		log.Fatalf("open session: %v", err)
	}

	block, err := session.AddBlock(document.TypeParagraph)
	if err != nil {
		log.Fatalf("add block: %v", err)
	}
	content := "Internal contacts are listed on the private page."
	if err := session.UpdateBlock(block.ID, editor.BlockPatch{Content: &content, IsPrivate: true}); err != nil {
		log.Fatalf("update block: %v", err)
	}

	if _, err := module.SaveSession(ctx, "team-handbook", i18n.LocaleDefault, session); err != nil {
		log.Fatalf("save session: %v", err)
	}

	public, err := module.RenderPage(ctx, "team-handbook", render.Context{})
	if err != nil {
		log.Fatalf("render public: %v", err)
	}
	fmt.Println("--- public view ---")
	fmt.Println(public)

	private, err := module.RenderPage(ctx, "team-handbook", render.Context{IsAuthenticated: true})
	if err != nil {
		log.Fatalf("render private: %v", err)
	}
	fmt.Println("--- authenticated view ---")
	fmt.Println(private)

	day := time.Now()
	slots, err := editor.PreviewSlots(day, "09:00", "10:30", 30)
	if err != nil {
		log.Fatalf("preview slots: %v", err)
	}
	fmt.Println("--- booking slots ---")
	for _, slot := range slots {
		fmt.Printf("%s - %s\n", slot.Start.Format("15:04"), slot.End.Format("15:04"))
	}
}

package main

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/meur/rulesview/internal/config"
	"github.com/meur/rulesview/internal/render"
	"github.com/meur/rulesview/internal/source"
	"github.com/meur/rulesview/internal/storage"
	"github.com/meur/rulesview/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func buildCmd() *cobra.Command {
	var (
		flags dataFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the pages as a static site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Dir = out
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return build(cmd.Context(), cfg, logger)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory")

	return cmd
}

func build(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	loader := source.NewLoader(cfg.Data.FetchTimeout, logger)
	catalog, err := loader.LoadCatalog(ctx, cfg.Data.BattleProfiles, cfg.Data.FAQ, cfg.Data.OverlayDir)
	loader.Close()
	if err != nil {
		return err
	}

	renderer, err := render.New(render.StaticLinks{})
	if err != nil {
		return err
	}

	site := siteWriter{dir: cfg.Output.Dir, renderer: renderer, info: view.BuildDataInfo(catalog)}
	if err := os.MkdirAll(site.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	index := view.BuildArmyIndex(catalog, "")
	if err := site.armies("index.html", catalog, index); err != nil {
		return err
	}
	if err := site.armies("armies.html", catalog, index); err != nil {
		return err
	}
	for _, name := range index.Armies {
		if err := site.armies(render.ArmyFile(name), catalog, view.BuildArmyIndex(catalog, name)); err != nil {
			return err
		}
	}

	pages := []struct {
		file  string
		page  string
		title string
		data  interface{}
	}{
		{"regiments.html", render.PageRegiments, "Regiments of Renown", view.BuildRegiments(catalog)},
		{"manifestations.html", render.PageManifestations, "Universal Manifestations", view.BuildManifestations(catalog)},
		{"faq.html", render.PageFAQ, "FAQ", view.BuildFAQ(catalog.FAQ())},
	}
	for _, p := range pages {
		if err := site.write(p.file, p.page, p.title, p.data); err != nil {
			return err
		}
	}

	if err := copyAssets(filepath.Join(site.dir, "assets"), cfg.Server.AssetsDir); err != nil {
		return err
	}

	logger.Info("Site written",
		zap.String("dir", site.dir),
		zap.Int("armies", len(index.Armies)),
		zap.String("revision", catalog.Revision()),
	)
	return nil
}

type siteWriter struct {
	dir      string
	renderer *render.Renderer
	info     *view.DataInfo
}

func (s siteWriter) armies(file string, catalog *storage.Catalog, index view.ArmyIndex) error {
	data := render.ArmiesPage{Index: index}
	if index.Message == "" {
		army, msg, ok := view.BuildArmy(catalog, index.Selected)
		if ok {
			data.Army = &army
		} else {
			data.Message = msg
		}
	}
	return s.write(file, render.PageArmies, "Armies", data)
}

func (s siteWriter) write(file, page, title string, data interface{}) error {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page, render.Page{Title: title, Info: s.info, Data: data}); err != nil {
		return err
	}
	path := filepath.Join(s.dir, file)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// copyAssets writes the bundled assets, then anything in overrideDir on top
func copyAssets(dst, overrideDir string) error {
	sources := []fs.FS{render.Assets()}
	if overrideDir != "" {
		if info, err := os.Stat(overrideDir); err == nil && info.IsDir() {
			sources = append(sources, os.DirFS(overrideDir))
		}
	}

	for _, src := range sources {
		err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			target := filepath.Join(dst, filepath.FromSlash(path))
			if d.IsDir() {
				return os.MkdirAll(target, 0o755)
			}
			data, err := fs.ReadFile(src, path)
			if err != nil {
				return err
			}
			return os.WriteFile(target, data, 0o644)
		})
		if err != nil {
			return fmt.Errorf("failed to copy assets: %w", err)
		}
	}
	return nil
}

// gltftool is a CLI utility for working with glTF 2.0 assets.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gltfkit/internal/config"
	"github.com/Faultbox/gltfkit/internal/logger"
	"github.com/Faultbox/gltfkit/pkg/document"
	"github.com/Faultbox/gltfkit/pkg/gltf"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "validate":
		cmdValidate(args)
	case "convert":
		cmdConvert(cfg, args)
	case "stats":
		cmdStats(args)
	case "prune":
		cmdPrune(cfg, args)
	case "merge":
		cmdMerge(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gltftool - glTF 2.0 asset utility

Usage:
  gltftool [flags] <command> [options]

Commands:
  info <file>                 Show document overview
  validate <file>             Check accessors and report problems
  convert <in> <out>          Convert between .gltf and .glb
  stats <file>                Show per-mesh geometry statistics
  prune <in> <out>            Drop unreferenced materials, textures, buffers
  merge <out> <in> [in...]    Combine documents into one

Flags:
  -config <path>   Explicit config file
  -format <f>      Output format: gltf or glb
  -layout <l>      Vertex layout: interleaved or separate
  -compact         Compact JSON output
  -debug           Debug logging

Examples:
  gltftool info scene.glb
  gltftool convert scene.gltf scene.glb
  gltftool -layout separate convert scene.glb scene.gltf`)
}

func loadDocument(path string) *document.Document {
	doc, err := gltf.Load(path, gltf.ReadOptions{Logger: logger.Log})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return doc
}

func writeOptions(cfg *config.Config) gltf.WriteOptions {
	opts := gltf.WriteOptions{
		Basename: cfg.Output.Basename,
		Compact:  !cfg.Output.Pretty,
		Logger:   logger.Log,
	}
	if cfg.Output.Format == "glb" {
		opts.Format = gltf.FormatGLB
	}
	if cfg.Output.VertexLayout == "separate" {
		opts.VertexLayout = gltf.LayoutSeparate
	}
	return opts
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gltftool info <file>")
		os.Exit(1)
	}

	doc := loadDocument(args[0])
	root := doc.Root()

	fmt.Printf("Asset:      %s\n", args[0])
	fmt.Printf("Version:    %s\n", root.Version())
	if g := root.Generator(); g != "" {
		fmt.Printf("Generator:  %s\n", g)
	}
	if s := root.DefaultScene(); s != nil {
		name := s.Name()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("Scene:      %s\n", name)
	}
	fmt.Println()

	fmt.Printf("Scenes:     %d\n", len(root.ListScenes()))
	fmt.Printf("Nodes:      %d\n", len(root.ListNodes()))
	fmt.Printf("Meshes:     %d\n", len(root.ListMeshes()))
	fmt.Printf("Materials:  %d\n", len(root.ListMaterials()))
	fmt.Printf("Textures:   %d\n", len(root.ListTextures()))
	fmt.Printf("Accessors:  %d\n", len(root.ListAccessors()))
	fmt.Printf("Buffers:    %d\n", len(root.ListBuffers()))
	fmt.Printf("Skins:      %d\n", len(root.ListSkins()))
	fmt.Printf("Cameras:    %d\n", len(root.ListCameras()))
	fmt.Printf("Animations: %d\n", len(root.ListAnimations()))

	if exts := root.ListExtensions(); len(exts) > 0 {
		var names []string
		for _, e := range exts {
			n := e.ExtensionName()
			if e.Required() {
				n += " (required)"
			}
			names = append(names, n)
		}
		sort.Strings(names)
		fmt.Printf("Extensions: %s\n", strings.Join(names, ", "))
	}

	var dataBytes int
	for _, a := range root.ListAccessors() {
		dataBytes += a.ByteLength()
	}
	for _, t := range root.ListTextures() {
		dataBytes += len(t.Image())
	}
	fmt.Printf("Data:       %.2f KB\n", float64(dataBytes)/1024)
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gltftool validate <file>")
		os.Exit(1)
	}

	doc := loadDocument(args[0])
	root := doc.Root()

	problems := 0
	for i, a := range root.ListAccessors() {
		if err := a.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "accessor %d (%s): %v\n", i, a.Name(), err)
			problems++
			continue
		}
		if a.Buffer() == nil && a.Count() > 0 {
			fmt.Fprintf(os.Stderr, "accessor %d (%s): no buffer assigned\n", i, a.Name())
			problems++
		}
	}
	for i, m := range root.ListMeshes() {
		for j, p := range m.ListPrimitives() {
			if p.Attribute("POSITION") == nil {
				fmt.Fprintf(os.Stderr, "mesh %d primitive %d: no POSITION attribute\n", i, j)
				problems++
			}
		}
	}

	if problems > 0 {
		fmt.Fprintf(os.Stderr, "\n%d problem(s) found\n", problems)
		os.Exit(1)
	}
	fmt.Println("OK")
}

func cmdConvert(cfg *config.Config, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gltftool convert <in> <out>")
		os.Exit(1)
	}

	doc := loadDocument(args[0])
	if err := gltf.Save(args[1], doc, writeOptions(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("converted", zap.String("from", args[0]), zap.String("to", args[1]))
	fmt.Printf("Wrote %s\n", args[1])
}

func cmdStats(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gltftool stats <file>")
		os.Exit(1)
	}

	doc := loadDocument(args[0])
	root := doc.Root()

	var totalVerts, totalIndices int
	for _, m := range root.ListMeshes() {
		name := m.Name()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("mesh %s\n", name)
		for i, p := range m.ListPrimitives() {
			verts := 0
			if pos := p.Attribute("POSITION"); pos != nil {
				verts = pos.Count()
			}
			indices := 0
			if idx := p.Indices(); idx != nil {
				indices = idx.Count()
			}
			totalVerts += verts
			totalIndices += indices
			fmt.Printf("  primitive %d: %d vertices, %d indices, attributes [%s]\n",
				i, verts, indices, strings.Join(p.Semantics(), " "))
		}
	}

	fmt.Printf("\nTotal: %d vertices, %d indices\n", totalVerts, totalIndices)

	for _, anim := range root.ListAnimations() {
		fmt.Printf("animation %s: %d channels, %d samplers\n",
			anim.Name(), len(anim.ListChannels()), len(anim.ListSamplers()))
	}
	for _, tex := range root.ListTextures() {
		fmt.Printf("texture %s: %s, %d bytes\n", tex.Name(), tex.MimeType(), len(tex.Image()))
	}
}

func cmdPrune(cfg *config.Config, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gltftool prune <in> <out>")
		os.Exit(1)
	}

	doc := loadDocument(args[0])
	root := doc.Root()
	before := len(root.ListMeshes()) + len(root.ListMaterials()) + len(root.ListTextures()) +
		len(root.ListAccessors()) + len(root.ListBuffers()) + len(root.ListSkins()) + len(root.ListCameras())

	if err := doc.Transform(document.Prune()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	after := len(root.ListMeshes()) + len(root.ListMaterials()) + len(root.ListTextures()) +
		len(root.ListAccessors()) + len(root.ListBuffers()) + len(root.ListSkins()) + len(root.ListCameras())

	if err := gltf.Save(args[1], doc, writeOptions(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Pruned %d unused properties, wrote %s\n", before-after, args[1])
}

func cmdMerge(cfg *config.Config, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gltftool merge <out> <in> [in...]")
		os.Exit(1)
	}

	out := args[0]
	doc := document.New()
	for _, path := range args[1:] {
		src := loadDocument(path)
		if err := doc.Merge(src); err != nil {
			fmt.Fprintf(os.Stderr, "Error merging %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	if err := gltf.Save(out, doc, writeOptions(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Merged %d documents into %s\n", len(args)-1, out)
}

// meshgen is a CLI utility for generating procedural lattice meshes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgen/internal/config"
	"github.com/Faultbox/meshgen/internal/generator"
	"github.com/Faultbox/meshgen/internal/logger"
	"github.com/Faultbox/meshgen/pkg/mesh"
	"github.com/Faultbox/meshgen/pkg/meshio"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "sphere":
		cmdSphere(args)
	case "wave":
		cmdWave(args)
	case "info":
		cmdInfo(args)
	case "init":
		cmdInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshgen - procedural lattice mesh generator

Usage:
  meshgen <command> [options]

Commands:
  generate [-config f] [-out dir] [-format f] [-workers n] [-debug]
                                Generate every mesh in the config
  sphere [options]              Generate a single UV sphere
  wave [options]                Generate a single wave plane
  info [-config f]              Print mesh statistics without writing files
  init [path]                   Write the default config (default ./meshgen.yaml)

Formats: obj, ply, ply-binary

Examples:
  meshgen init
  meshgen generate -out ./meshes -format ply-binary
  meshgen sphere -radius 2 -u 64 -v 32 -o ball.obj
  meshgen wave -amplitude 0.5 -u 100 -v 100 -format ply -o -`)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func loadConfig(args []string) *config.Config {
	if err := config.ParseArgs(args); err != nil {
		fail(err)
	}
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func cmdGenerate(args []string) {
	cfg := loadConfig(args)
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)
	logger.Info("generating meshes",
		zap.Int("count", len(cfg.Meshes)),
		zap.String("dir", cfg.Output.Dir),
		zap.String("format", cfg.Output.Format))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := generator.New(cfg)
	defer g.Close()

	results, err := g.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Warn("generation interrupted")
		logger.Sync()
		os.Exit(130)
	}
	if err != nil {
		logger.Fatal("generate failed", zap.Error(err))
	}

	for _, r := range results {
		fmt.Printf("  %-16s %-10s %8d verts %8d tris  %s\n",
			r.Name, r.Surface, r.Mesh.VertexCount(), r.Mesh.TriangleCount(), r.File)
	}
}

func cmdInfo(args []string) {
	cfg := loadConfig(args)
	defer logger.Sync()

	g := generator.New(cfg)
	defer g.Close()

	fmt.Printf("%-16s %-10s %9s %8s %8s %6s  %s\n", "NAME", "SURFACE", "LATTICE", "VERTS", "TRIS", "DEGEN", "BOUNDS")
	for _, mc := range cfg.Meshes {
		m, err := g.Build(mc)
		if err != nil {
			logger.Error("building mesh failed", zap.String("mesh", mc.Name), zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		printStats(os.Stdout, mc.Name, mc.Surface, m)
		if n := m.DegenerateCount(); n > 0 {
			logger.Debug("mesh has zero-length normals", zap.String("mesh", mc.Name), zap.Int("count", n))
		}
	}
}

func printStats(w io.Writer, name, surface string, m *mesh.Mesh) {
	u, v := m.Segments()
	b := m.Bounds()
	size := b.Size()
	fmt.Fprintf(w, "%-16s %-10s %9s %8d %8d %6d  %.3gx%.3gx%.3g\n",
		name, surface, fmt.Sprintf("%dx%d", u, v),
		m.VertexCount(), m.TriangleCount(), m.DegenerateCount(),
		size.X, size.Y, size.Z)
}

func cmdInit(args []string) {
	path := "meshgen.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		fail(fmt.Errorf("%s already exists", path))
	}
	if err := config.Default().SaveTo(path); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote default config to %s\n", path)
}

// singleFlags are the options shared by the quick single-mesh commands.
type singleFlags struct {
	u, v      *int
	format    *string
	out       *string
	workers   *int
	weld      *bool
	weldSeams *bool
	mirror    *bool
}

func newSingleFlags(fs *flag.FlagSet, u, v int) singleFlags {
	return singleFlags{
		u:         fs.Int("u", u, "Segments along u"),
		v:         fs.Int("v", v, "Segments along v"),
		format:    fs.String("format", "obj", "Output format (obj, ply, ply-binary)"),
		out:       fs.String("o", "", "Output file, - for stdout (default <name>.<ext>)"),
		workers:   fs.Int("workers", 1, "Rows sampled concurrently"),
		weld:      fs.Bool("weld", false, "Merge coincident vertices"),
		weldSeams: fs.Bool("weld-seams", false, "Share normals across closed seams"),
		mirror:    fs.Bool("mirror", false, "Reverse winding"),
	}
}

func (sf singleFlags) apply(mc *config.MeshConfig) {
	mc.USegments = *sf.u
	mc.VSegments = *sf.v
	mc.Format = *sf.format
	mc.Weld = *sf.weld
	mc.MirrorU = *sf.mirror
}

func cmdSphere(args []string) {
	fs := flag.NewFlagSet("sphere", flag.ExitOnError)
	radius := fs.Float64("radius", 1, "Sphere radius")
	sf := newSingleFlags(fs, 32, 32)
	fs.Parse(args)

	mc := config.MeshConfig{Name: "sphere", Surface: config.SurfaceSphere, Radius: *radius}
	sf.apply(&mc)
	runSingle(mc, sf)
}

func cmdWave(args []string) {
	fs := flag.NewFlagSet("wave", flag.ExitOnError)
	width := fs.Float64("width", 3, "Plane width")
	height := fs.Float64("height", 3, "Plane height")
	amplitude := fs.Float64("amplitude", 0.3, "Wave amplitude")
	frequency := fs.Float64("frequency", generator.DefaultWaveFrequency, "Wave frequency")
	sf := newSingleFlags(fs, 50, 50)
	fs.Parse(args)

	mc := config.MeshConfig{
		Name:      "wave",
		Surface:   config.SurfaceWave,
		Width:     *width,
		Height:    *height,
		Amplitude: *amplitude,
		Frequency: *frequency,
	}
	sf.apply(&mc)
	runSingle(mc, sf)
}

func runSingle(mc config.MeshConfig, sf singleFlags) {
	if err := mc.Validate(); err != nil {
		fail(err)
	}
	format, err := meshio.ParseFormat(mc.Format)
	if err != nil {
		fail(err)
	}

	cfg := config.Default()
	cfg.Generation.Workers = *sf.workers
	cfg.Generation.WeldSeams = *sf.weldSeams
	cfg.Meshes = []config.MeshConfig{mc}

	g := generator.New(cfg)
	defer g.Close()

	m, err := g.Build(mc)
	if err != nil {
		fail(err)
	}

	out := *sf.out
	if out == "-" {
		if err := meshio.Write(os.Stdout, m, format, mc.Name); err != nil {
			fail(err)
		}
		return
	}
	if out == "" {
		out = mc.Name + format.Ext()
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		fail(err)
	}

	f, err := os.Create(out)
	if err != nil {
		fail(err)
	}
	if err := meshio.Write(f, m, format, mc.Name); err != nil {
		f.Close()
		fail(err)
	}
	if err := f.Close(); err != nil {
		fail(err)
	}
	printStats(os.Stderr, mc.Name, mc.Surface, m)
	fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
}

// Package generator builds the meshes listed in a config and writes them to disk.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meshgen/internal/assets"
	"github.com/Faultbox/meshgen/internal/config"
	"github.com/Faultbox/meshgen/internal/logger"
	"github.com/Faultbox/meshgen/pkg/mesh"
	"github.com/Faultbox/meshgen/pkg/meshio"
)

// ManifestFile is the name of the summary written next to the meshes.
const ManifestFile = "manifest.yaml"

// Result describes one generated mesh.
type Result struct {
	Name     string
	Surface  string
	File     string // empty when nothing was written
	Format   meshio.Format
	Mesh     *mesh.Mesh
	Duration time.Duration
}

// Generator runs the mesh jobs of a config.
type Generator struct {
	cfg  *config.Config
	maps *assets.Manager
	log  *zap.Logger
}

// New creates a generator for cfg. The config should already be validated.
func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg:  cfg,
		maps: assets.NewManager(),
		log:  logger.Named("generator"),
	}
}

// Close releases cached height maps.
func (g *Generator) Close() {
	g.maps.Close()
}

// Build generates a single mesh entry without writing it.
func (g *Generator) Build(mc config.MeshConfig) (*mesh.Mesh, error) {
	s, err := BuildSurface(mc, g.maps)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", mc.Name, err)
	}

	opts := mesh.BuildOptions{
		Workers:   g.cfg.Generation.Workers,
		WeldSeams: g.cfg.Generation.WeldSeams,
		ExactSeam: g.cfg.Generation.ExactSeam,
	}
	m, err := mesh.Generate(s, mc.USegments, mc.VSegments, opts)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", mc.Name, err)
	}

	if mc.Weld {
		m, err = mesh.Weld(m, mesh.DefaultWeldTolerance)
		if err != nil {
			return nil, fmt.Errorf("welding mesh %s: %w", mc.Name, err)
		}
	}
	return m, nil
}

// Run generates every configured mesh, writes each to the output directory and,
// if enabled, writes the manifest. Meshes are built concurrently; results keep
// config order. The first failure cancels the remaining jobs.
func (g *Generator) Run(ctx context.Context) ([]Result, error) {
	dir := g.cfg.Output.Dir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", dir, err)
	}

	results := make([]Result, len(g.cfg.Meshes))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.cfg.Generation.Workers, 1))

	for i, mc := range g.cfg.Meshes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.runOne(mc, dir)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		g.log.Error("generation failed", zap.Error(err))
		return nil, err
	}

	if g.cfg.Output.Manifest {
		path := filepath.Join(dir, ManifestFile)
		if err := writeManifest(path, results); err != nil {
			return nil, err
		}
		g.log.Debug("manifest written", zap.String("path", path))
	}

	hits, misses := g.maps.Stats()
	g.log.Info("generation complete",
		zap.Int("meshes", len(results)),
		zap.String("dir", dir),
		zap.Int("heightmap_hits", hits),
		zap.Int("heightmap_misses", misses))
	return results, nil
}

func (g *Generator) runOne(mc config.MeshConfig, dir string) (Result, error) {
	start := time.Now()

	format, err := meshio.ParseFormat(mc.OutputFormat(g.cfg.Output.Format))
	if err != nil {
		return Result{}, fmt.Errorf("mesh %s: %w", mc.Name, err)
	}

	m, err := g.Build(mc)
	if err != nil {
		return Result{}, err
	}

	path := filepath.Join(dir, mc.Name+format.Ext())
	if err := writeMesh(path, m, format, mc.Name); err != nil {
		return Result{}, err
	}

	res := Result{
		Name:     mc.Name,
		Surface:  mc.Surface,
		File:     path,
		Format:   format,
		Mesh:     m,
		Duration: time.Since(start),
	}
	g.logResult(res)
	return res, nil
}

func (g *Generator) logResult(res Result) {
	u, v := res.Mesh.Segments()
	fields := []zap.Field{
		zap.String("mesh", res.Name),
		zap.String("surface", res.Surface),
		zap.Int("u_segments", u),
		zap.Int("v_segments", v),
		zap.Int("vertices", res.Mesh.VertexCount()),
		zap.Int("triangles", res.Mesh.TriangleCount()),
		zap.Bool("welded", res.Mesh.Welded()),
		zap.Duration("took", res.Duration),
	}
	if res.File != "" {
		fields = append(fields, zap.String("file", res.File))
	}
	g.log.Info("mesh generated", fields...)

	if n := res.Mesh.DegenerateCount(); n > 0 {
		g.log.Warn("mesh has zero-length normals", zap.String("mesh", res.Name), zap.Int("count", n))
	}
}

func writeMesh(path string, m *mesh.Mesh, format meshio.Format, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := meshio.Write(f, m, format, name); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeManifest(path string, results []Result) error {
	var man meshio.Manifest
	for _, r := range results {
		man.Meshes = append(man.Meshes, meshio.NewManifestEntry(r.Name, r.Surface, filepath.Base(r.File), r.Format, r.Mesh))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := meshio.WriteManifest(f, man); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

package main

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chazu/meshkernel/internal/diag"
	"github.com/chazu/meshkernel/pkg/meshmodel"
	"github.com/chazu/meshkernel/pkg/repair"
	"github.com/chazu/meshkernel/pkg/vec3"
)

var (
	repairNeedleRatio float64
	repairCapDegrees  float64
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair almost-degenerate faces on a sliver-bearing fixture mesh",
	Long: `Builds a small fixture mesh with a needle and a cap already baked
in (the same bowtie and kite shapes pkg/repair/driver_test.go uses to
exercise the collapse and flip paths) and runs the fixed-point repair
driver until every face is well-shaped or the driver stalls.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().Float64Var(&repairNeedleRatio, "needle-ratio", 4.0, "longest/shortest edge ratio threshold")
	repairCmd.Flags().Float64Var(&repairCapDegrees, "cap-degrees", 160.0, "interior angle threshold in degrees")
}

// fixtureMesh builds two disjoint components in one vertex/triangle
// buffer: a bowtie sharing a needle-length edge between its two
// triangles, and a kite triangulated on its long diagonal so both
// halves classify as caps. The kite is offset well clear of the bowtie
// so the two components never share a vertex.
func fixtureMesh() ([]vec3.Vec3, [][3]int) {
	verts := []vec3.Vec3{
		{X: 0, Y: 0, Z: 0},    // 0: e0, shared needle endpoint
		{X: 0.05, Y: 0, Z: 0}, // 1: e1, shared needle endpoint
		{X: 0, Y: 1, Z: 0},    // 2: w1
		{X: 0, Y: -1, Z: 0},   // 3: w2

		{X: 10, Y: 0, Z: 0},     // 4: p0 (tip)
		{X: 11, Y: 0.05, Z: 0},  // 5: p1 (near midline, above)
		{X: 12, Y: 0, Z: 0},     // 6: p2 (tip)
		{X: 11, Y: -0.05, Z: 0}, // 7: p3 (near midline, below)
	}
	tris := [][3]int{
		{0, 1, 2}, // bowtie half 1
		{1, 0, 3}, // bowtie half 2
		{4, 5, 6}, // kite half 1
		{4, 6, 7}, // kite half 2
	}
	return verts, tris
}

func runRepair(cmd *cobra.Command, args []string) error {
	runID := uuid.New()
	log := logger.With(zap.String("run_id", runID.String()), zap.String("op", "repair"))

	verts, tris := fixtureMesh()
	log.Info("fixture generated", zap.Int("vertices", len(verts)), zap.Int("triangles", len(tris)))

	mesh := meshmodel.NewArenaMesh(verts, tris)

	opts := repair.NewOptions()
	opts.NeedleRatio = repairNeedleRatio
	opts.CapAngleCosine = math.Cos(repairCapDegrees * math.Pi / 180)
	opts.Logger = diag.New(log)
	if err := opts.Validate(); err != nil {
		return errors.Wrap(err, "invalid options")
	}

	faces := mesh.Faces()
	log.Info("starting repair", zap.Int("faces", len(faces)))

	converged, err := repair.Repair(faces, mesh, opts)
	if err != nil {
		return errors.Wrap(err, "repair failed")
	}

	log.Info("repair finished", zap.Bool("converged", converged), zap.Int("remaining_faces", mesh.FaceCount()))
	fmt.Printf("repair converged=%v remaining_faces=%d run_id=%s\n", converged, mesh.FaceCount(), runID)
	return nil
}

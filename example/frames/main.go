package main

import (
	"bytes"
	_ "embed"
	"io"
	"math"
	"os"

	"github.com/biomechanics-foundation/onager"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed scene.yaml
var defaultScene []byte

// Report holds what run computed for the last frame of the chain
type Report struct {
	// Power f·m in every frame, base first
	Powers   []float64
	Twist    onager.MotionVec6
	Wrench   onager.ForceVec6
	Chain    onager.TransformationMatrix
	Momentum onager.ForceVec6
	// Largest component error of the twist after a round trip through the
	// inverse chain
	RoundTripError float64
	// Distance from the base origin to the last frame origin
	Reach float64
}

// run carries the twist and wrench frame by frame down the chain and checks
// that the composed chain transform gives the same result.
func run(scene *SceneConfig, logger *zap.Logger) (Report, error) {
	twist := onager.MotionVec6(scene.Twist)
	wrench := onager.ForceVec6(scene.Wrench)
	chain := onager.IdentTransform()

	report := Report{Powers: []float64{wrench.Dot(twist)}}
	logger.Info("base",
		zap.Float64s("twist", twist[:]),
		zap.Float64s("wrench", wrench[:]),
		zap.Float64("power", report.Powers[0]),
	)

	for _, frame := range scene.Frames {
		x, err := frame.Transform()
		if err != nil {
			return Report{}, err
		}
		twist.TransformInPlace(x)
		wrench.TransformInPlace(x)
		chain = x.Mul(chain)

		power := wrench.Dot(twist)
		report.Powers = append(report.Powers, power)
		logger.Info("frame",
			zap.String("name", frame.Name),
			zap.Float64s("twist", twist[:]),
			zap.Float64s("wrench", wrench[:]),
			zap.Float64("power", power),
		)
	}

	direct := onager.MotionVec6(scene.Twist).Transform(chain)
	if !direct.ApproxEqualThreshold(twist, 1e-9) {
		logger.Warn("composed chain disagrees with frame-by-frame transform",
			zap.Float64s("composed", direct[:]),
			zap.Float64s("stepwise", twist[:]),
		)
	}

	back := twist.Transform(chain.Inverse())
	for i := range back {
		report.RoundTripError = math.Max(report.RoundTripError, math.Abs(back[i]-scene.Twist[i]))
	}

	report.Twist = twist
	report.Wrench = wrench
	report.Chain = chain

	if scene.Body != nil {
		inertia, com, err := scene.Body.Inertia()
		if err != nil {
			return Report{}, err
		}
		report.Momentum = inertia.MotionMul(twist, com)
		logger.Info("body",
			zap.Float64("mass", inertia.Mass),
			zap.Float64s("momentum", report.Momentum[:]),
		)
	}

	offset := chain.ToTranslation().R3()
	report.Reach = offset.Norm()
	logger.Info("chain",
		zap.Int("frames", len(scene.Frames)),
		zap.Float64s("translation", []float64{offset.X, offset.Y, offset.Z}),
		zap.Float64("reach", report.Reach),
		zap.Float64("round_trip_error", report.RoundTripError),
	)
	return report, nil
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	err = realMain(os.Args[1:], logger)
	if err != nil {
		logger.Error("frames", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// realMain loads the scene named by args[0], or the embedded default, and
// runs it.
func realMain(args []string, logger *zap.Logger) error {
	var r io.Reader = bytes.NewReader(defaultScene)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open scene")
		}
		defer f.Close()
		r = f
	}

	scene, err := LoadScene(r)
	if err != nil {
		return err
	}
	if _, err := run(scene, logger); err != nil {
		return errors.Wrap(err, "run")
	}
	return nil
}

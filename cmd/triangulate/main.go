// Command triangulate reads a document JSON file describing a planar
// domain, triangulates and optionally refines it, and writes the resulting
// mesh back out as a document JSON file (plus, optionally, an SVG render).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/havenmesh/triangulate/document"
	"github.com/havenmesh/triangulate/rasterize"
	"github.com/havenmesh/triangulate/triangulate"
)

// exitCode classifies a run() failure the way spec.md §6.2 prescribes:
// 1 malformed input/validation, 2 I/O failure, 3 triangulation error.
type exitCode int

const (
	exitValidation  exitCode = 1
	exitIO          exitCode = 2
	exitTriangulate exitCode = 3
)

// runError pairs an error with the exit code it should map to.
type runError struct {
	code exitCode
	err  error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

func ioErr(err error) error          { return &runError{code: exitIO, err: err} }
func validationErr(err error) error  { return &runError{code: exitValidation, err: err} }
func triangulateErr(err error) error { return &runError{code: exitTriangulate, err: err} }

type flags struct {
	input     string
	output    string
	show      bool
	outputSVG string
	quality   float64
	maxArea   float64

	qualitySet bool
}

func main() {
	log := zap.NewNop()
	if lg, err := zap.NewProduction(); err == nil {
		log = lg
	}
	defer log.Sync() //nolint:errcheck

	root := newRootCommand(log.Sugar())
	if err := root.Execute(); err != nil {
		code := exitTriangulate
		var re *runError
		if ok := asRunError(err, &re); ok {
			code = re.code
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(code))
	}
}

func asRunError(err error, target **runError) bool {
	for err != nil {
		if re, ok := err.(*runError); ok {
			*target = re
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func newRootCommand(log *zap.SugaredLogger) *cobra.Command {
	f := &flags{quality: math.Sqrt2}

	cmd := &cobra.Command{
		Use:   "triangulate",
		Short: "Triangulate and refine a planar domain described by a document JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var maxArea *float64
			if cmd.Flags().Changed("max-area") {
				maxArea = &f.maxArea
			}
			f.qualitySet = cmd.Flags().Changed("quality")
			return run(log, f, maxArea)
		},
	}

	cmd.Flags().StringVar(&f.input, "input", "", "document JSON path (required)")
	cmd.Flags().StringVar(&f.output, "output", "", "output JSON path (default stdout)")
	cmd.Flags().BoolVar(&f.show, "show", false, "render the mesh to a temp SVG and print its path")
	cmd.Flags().StringVar(&f.outputSVG, "output-svg", "", "render the mesh directly to the given SVG path")
	cmd.Flags().Float64Var(&f.quality, "quality", math.Sqrt2, "refinement quality ratio, overrides the document's params.quality")
	cmd.Flags().Float64Var(&f.maxArea, "max-area", 0, "refinement max triangle area, overrides the document's params.max_area")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func run(log *zap.SugaredLogger, f *flags, maxAreaFlag *float64) error {
	raw, err := os.ReadFile(f.input)
	if err != nil {
		return ioErr(fmt.Errorf("reading input: %w", err))
	}

	var in document.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return validationErr(fmt.Errorf("parsing input: %w", err))
	}
	in.Normalize()
	log.Infow("loaded document", "name", in.Name, "actions", len(in.Actions))

	tr, err := document.Assemble(in, triangulate.WithLogger(log))
	if err != nil {
		return validationErr(fmt.Errorf("assembling domain: %w", err))
	}

	if err := tr.Triangulate(); err != nil {
		return triangulateErr(fmt.Errorf("triangulating: %w", err))
	}

	quality := in.Params.Quality
	if f.qualitySet || quality <= 0 {
		quality = f.quality
	}
	maxArea := in.Params.MaxArea
	if maxAreaFlag != nil {
		maxArea = maxAreaFlag
	}

	// tr.Refine logs its own iteration-cap warning via the logger passed to
	// document.Assemble above; the caller only needs the return value to
	// decide whether to still treat the run as a success.
	if _, err := tr.Refine(quality, maxArea); err != nil {
		return triangulateErr(fmt.Errorf("refining: %w", err))
	}

	out := document.BuildOutput(in, tr)
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return ioErr(fmt.Errorf("encoding output: %w", err))
	}

	var w io.Writer = os.Stdout
	if f.output != "" {
		outFile, err := os.Create(f.output)
		if err != nil {
			return ioErr(fmt.Errorf("creating output file: %w", err))
		}
		defer outFile.Close()
		w = outFile
	}
	if _, err := w.Write(append(encoded, '\n')); err != nil {
		return ioErr(fmt.Errorf("writing output: %w", err))
	}

	if f.outputSVG != "" {
		if err := writeSVG(tr, f.outputSVG); err != nil {
			return ioErr(err)
		}
	}
	if f.show {
		path, err := showSVG(tr)
		if err != nil {
			return ioErr(err)
		}
		fmt.Println(path)
	}

	return nil
}

func writeSVG(tr *triangulate.Triangulator, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating SVG file: %w", err)
	}
	defer f.Close()

	opts := []rasterize.Option{
		rasterize.WithBoundary(tr.Boundary()),
		rasterize.WithHoles(tr.Holes()),
	}
	if err := rasterize.RasterizeSVG(f, tr.Store(), opts...); err != nil {
		return fmt.Errorf("rendering SVG: %w", err)
	}
	return nil
}

func showSVG(tr *triangulate.Triangulator) (string, error) {
	f, err := os.CreateTemp("", "triangulate-*.svg")
	if err != nil {
		return "", fmt.Errorf("creating temp SVG file: %w", err)
	}
	defer f.Close()

	opts := []rasterize.Option{
		rasterize.WithBoundary(tr.Boundary()),
		rasterize.WithHoles(tr.Holes()),
	}
	if err := rasterize.RasterizeSVG(f, tr.Store(), opts...); err != nil {
		return "", fmt.Errorf("rendering SVG: %w", err)
	}
	return f.Name(), nil
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/polysolve/internal/analysis"
	"github.com/san-kum/polysolve/internal/config"
	"github.com/san-kum/polysolve/internal/equation"
	"github.com/san-kum/polysolve/internal/history"
	"github.com/san-kum/polysolve/internal/report"
	"github.com/san-kum/polysolve/internal/solve"
	"github.com/san-kum/polysolve/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	preset  string
	noSave  bool
	// Plot window override; when zero the window is derived from the
	// roots and critical points.
	plotFrom float64
	plotTo   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "polysolve",
		Short: "closed-form polynomial equation solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".polysolve", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [a b ...]",
		Short: "solve an equation from its coefficients (highest power first)",
		Args:  cobra.RangeArgs(0, 4),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&preset, "preset", "", "use a preset equation (see 'presets')")
	solveCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the solve")

	batchCmd := &cobra.Command{
		Use:   "batch [file.yaml]",
		Short: "solve every equation in a batch file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the solves")

	plotCmd := &cobra.Command{
		Use:   "plot [a b ...]",
		Short: "plot the polynomial around its roots",
		Args:  cobra.RangeArgs(2, 4),
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&plotFrom, "from", 0, "window start (default: derived)")
	plotCmd.Flags().Float64Var(&plotTo, "to", 0, "window end (default: derived)")

	presetsCmd := &cobra.Command{
		Use:   "presets [kind]",
		Short: "list preset equations for a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for kind: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				p := config.GetPreset(args[0], name)
				eq, err := equation.New(p.Degree, p.Coefficients)
				if err != nil {
					return err
				}
				fmt.Printf("  %-10s %s\n", name, eq)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded solves",
		RunE:  runList,
	}

	exportCmd := &cobra.Command{
		Use:   "export [solve_id]",
		Short: "export a recorded solve as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := history.New(dataDir).Load(args[0])
			if err != nil {
				return err
			}
			return history.ExportJSON(os.Stdout, rec)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(solveCmd, batchCmd, plotCmd, presetsCmd, listCmd, exportCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseCoefficients(args []string) ([]float64, error) {
	coeffs := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q is not a number: %w", arg, err)
		}
		coeffs[i] = v
	}
	return coeffs, nil
}

func buildEquation(args []string) (*equation.Equation, error) {
	if preset != "" {
		p := config.FindPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		return equation.New(p.Degree, p.Coefficients)
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("need 2-4 coefficients (highest power first)")
	}
	coeffs, err := parseCoefficients(args)
	if err != nil {
		return nil, err
	}
	return equation.New(len(coeffs)-1, coeffs)
}

func runSolve(cmd *cobra.Command, args []string) error {
	eq, err := buildEquation(args)
	if err != nil {
		return err
	}

	roots := solve.Roots(eq)
	facts := analysis.Analyze(eq)

	fmt.Println(report.Render(eq, roots, facts))

	if noSave {
		return nil
	}
	st := history.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(eq, roots, facts)
	if err != nil {
		return err
	}
	fmt.Printf("recorded as %s\n", id)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load batch file: %w", err)
	}
	if len(cfg.Equations) == 0 {
		return fmt.Errorf("batch file has no equations")
	}

	st := history.New(dataDir)
	if !noSave {
		if err := st.Init(); err != nil {
			return err
		}
	}

	for i, ec := range cfg.Equations {
		label := ec.Label
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}

		eq, err := equation.New(ec.Degree, ec.Coefficients)
		if err != nil {
			fmt.Printf("%s: skipped: %v\n\n", label, err)
			continue
		}

		roots := solve.Roots(eq)
		facts := analysis.Analyze(eq)

		fmt.Printf("--- %s ---\n", label)
		fmt.Println(report.Render(eq, roots, facts))

		if !noSave {
			if _, err := st.Save(eq, roots, facts); err != nil {
				return err
			}
		}
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	coeffs, err := parseCoefficients(args)
	if err != nil {
		return err
	}
	eq, err := equation.New(len(coeffs)-1, coeffs)
	if err != nil {
		return err
	}

	from, to := plotWindow(eq)
	if plotFrom != 0 || plotTo != 0 {
		from, to = plotFrom, plotTo
	}
	if to <= from {
		return fmt.Errorf("empty plot window [%v, %v]", from, to)
	}

	const samples = 81
	data := make([]float64, samples)
	step := (to - from) / float64(samples-1)
	for i := range data {
		data[i] = eq.Eval(from + float64(i)*step)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s  x ∈ [%.2f, %.2f]", eq, from, to)),
	)
	fmt.Println(graph)
	return nil
}

// plotWindow derives a window covering the real roots and the kind's
// characteristic point (vertex or inflection), padded on both sides.
func plotWindow(eq *equation.Equation) (float64, float64) {
	roots := solve.Roots(eq)
	facts := analysis.Analyze(eq)

	anchors := append([]float64{}, roots.Real...)
	switch facts.Kind {
	case equation.Quadratic:
		anchors = append(anchors, facts.Vertex.X)
	case equation.Cubic:
		anchors = append(anchors, facts.Inflection.X)
	}
	if roots.Pair != nil {
		anchors = append(anchors, roots.Pair.Re)
	}

	lo, hi := anchors[0], anchors[0]
	for _, x := range anchors[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	pad := (hi - lo) / 2
	if pad < 1 {
		pad = 1
	}
	return lo - pad, hi + pad
}

func runList(cmd *cobra.Command, args []string) error {
	records, err := history.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no recorded solves")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tEQUATION\tCASE")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rec.ID,
			rec.Kind,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Equation,
			rec.Case,
		)
	}
	return w.Flush()
}

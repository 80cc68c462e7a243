package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/internal/host"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errIncomplete = errors.New("measurement did not complete, the points must be distinct")

var lengthCmd = &cobra.Command{
	Use:   "length <lon,lat> <lon,lat>...",
	Short: "Measure the length of a line",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMeasure(measurement.KindLength),
}

var areaCmd = &cobra.Command{
	Use:   "area <lon,lat> <lon,lat> <lon,lat>...",
	Short: "Measure the area of a polygon",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runMeasure(measurement.KindArea),
}

var circleCmd = &cobra.Command{
	Use:   "circle <center lon,lat> <edge lon,lat>",
	Short: "Measure the area of a circle",
	Long: `Measure the area of a circle given its center and a point on its edge.
The circle is approximated by a 64-sided polygon in the map projection.`,
	Args: cobra.ExactArgs(2),
	RunE: runMeasure(measurement.KindCircle),
}

func init() {
	for _, c := range []*cobra.Command{lengthCmd, areaCmd, circleCmd} {
		c.Flags().BoolVar(&flags.Freehand, "freehand", false, "replay the points as a press-and-drag sketch")
		c.Flags().StringVar(&flags.GeoJSON, "geojson", "", "write the measurement layer as GeoJSON to a file, - for stdout")
		rootCmd.AddCommand(c)
	}
}

func runMeasure(kind measurement.Kind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(cmd, flags)
		if err != nil {
			return err
		}
		opts, proj, err := buildOptions(s)
		if err != nil {
			return err
		}
		logger, err := newLogger(s.Verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		points, err := parseCoordinates(args)
		if err != nil {
			return err
		}

		m := host.New(host.WithProjection(proj))
		tool := measurement.New(m.Host(), opts, measurement.WithLogger(logger))
		m.AddInteraction(tool)

		mapPoints := make([]orb.Point, len(points))
		for i, p := range points {
			mapPoints[i] = proj.FromWGS84(p)
		}

		end, err := replay(m, tool, kind, s.Freehand, mapPoints)
		if err != nil {
			return err
		}
		logger.Info("measured", zap.Stringer("kind", kind), zap.String("result", end.Result))

		out := cmd.OutOrStdout()
		if s.GeoJSON == "-" {
			return writeGeoJSON(out, m, opts.LayerName)
		}
		printResult(out, kind, len(points), end)
		if s.GeoJSON != "" {
			f, err := os.Create(s.GeoJSON)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", s.GeoJSON, err)
			}
			defer f.Close()
			return writeGeoJSON(f, m, opts.LayerName)
		}
		return nil
	}
}

// parseCoordinates reads "lon,lat" arguments
func parseCoordinates(args []string) ([]orb.Point, error) {
	points := make([]orb.Point, 0, len(args))
	for _, arg := range args {
		lon, lat, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("invalid coordinate %q, expected lon,lat", arg)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in %q: %w", arg, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in %q: %w", arg, err)
		}
		if y < -90 || y > 90 {
			return nil, fmt.Errorf("latitude out of range in %q", arg)
		}
		points = append(points, orb.Point{x, y})
	}
	return points, nil
}

// replay drives the tool with the pointer events a user would produce to
// draw points, and returns the completed measurement
func replay(m *host.Map, tool *measurement.Tool, kind measurement.Kind, freehand bool, points []orb.Point) (measurement.MeasureEnd, error) {
	if len(points) < 2 {
		return measurement.MeasureEnd{}, errIncomplete
	}

	var ends []measurement.MeasureEnd
	unsubscribe := tool.OnMeasureEnd(func(ev measurement.MeasureEnd) {
		ends = append(ends, ev)
	})
	defer unsubscribe()

	tool.SetTool(true, kind.String(), freehand)
	first, last := points[0], points[len(points)-1]

	switch {
	case freehand:
		m.Move(first)
		m.Down(first)
		for _, p := range points[1 : len(points)-1] {
			m.Drag(p)
		}
		m.Up(last)
	case kind == measurement.KindCircle:
		m.Move(first)
		m.Click(first)
		m.Move(last)
		m.Click(last)
	default:
		for _, p := range points[:len(points)-1] {
			m.Move(p)
			m.Click(p)
		}
		m.Move(last)
		m.DoubleClick(last)
	}

	if len(ends) == 0 {
		tool.SetTool(false, "", false)
		return measurement.MeasureEnd{}, errIncomplete
	}
	return ends[0], nil
}

func printResult(w io.Writer, kind measurement.Kind, points int, end measurement.MeasureEnd) {
	title := map[measurement.Kind]string{
		measurement.KindLength: "Length Measurement",
		measurement.KindArea:   "Area Measurement",
		measurement.KindCircle: "Circle Measurement",
	}[kind]

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintf(w, "Points:  %d\n", points)
	if end.Measurement.Geodesic {
		fmt.Fprintf(w, "Result:  %s\n", end.Result)
	} else {
		fmt.Fprintf(w, "Result:  %s map units\n", end.Result)
	}
	fmt.Fprintf(w, "Session: %s\n", end.SessionID)
}

func writeGeoJSON(w io.Writer, m *host.Map, layerName string) error {
	data, err := m.FeatureCollection(layerName).MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write GeoJSON: %w", err)
	}
	return nil
}

package export

import (
	"fmt"
	"strings"

	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

const (
	DisplacementColor = "#2563EB"
	VelocityColor     = "#16A34A"
)

type ChartOptions struct {
	Width  int
	Height int
	Title  string
	XLabel string
	YLabel string
	Stroke string
}

const (
	marginLeft   = 60.0
	marginRight  = 20.0
	marginTop    = 40.0
	marginBottom = 50.0
)

// LineChartSVG renders points as a single polyline with a title, axis
// labels and the min/max of each axis as tick text.
func LineChartSVG(points []vibration.Point, opts ChartOptions) string {
	if len(points) < 2 {
		return ""
	}
	if opts.Stroke == "" {
		opts.Stroke = DisplacementColor
	}

	// Find bounds
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	w, h := float64(opts.Width), float64(opts.Height)
	plotW := w - marginLeft - marginRight
	plotH := h - marginTop - marginBottom

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, opts.Width, opts.Height, opts.Width, opts.Height)

	fmt.Fprintf(&sb, `<text x="%.1f" y="24" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text>
`, w/2, escape(opts.Title))

	fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#cccccc"/>
`, marginLeft, marginTop, plotW, plotH)

	if minY < 0 && maxY > 0 {
		zy := marginTop + plotH - (0-minY)/rangeY*plotH
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#dddddd"/>
`, marginLeft, zy, marginLeft+plotW, zy)
	}

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="2" d="M`, opts.Stroke)
	for i, p := range points {
		x := marginLeft + (p.X-minX)/rangeX*plotW
		y := marginTop + plotH - (p.Y-minY)/rangeY*plotH

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n")

	fmt.Fprintf(&sb, `<g font-family="sans-serif" font-size="12">
<text x="%.1f" y="%.1f" text-anchor="start">%.3g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.3g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.3g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.3g</text>
<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>
<text x="16" y="%.1f" text-anchor="middle" transform="rotate(-90 16 %.1f)">%s</text>
</g>
`,
		marginLeft, marginTop+plotH+16, minX,
		marginLeft+plotW, marginTop+plotH+16, maxX,
		marginLeft-6, marginTop+plotH, minY,
		marginLeft-6, marginTop+12, maxY,
		marginLeft+plotW/2, h-12, escape(opts.XLabel),
		marginTop+plotH/2, marginTop+plotH/2, escape(opts.YLabel))

	sb.WriteString("</svg>\n")
	return sb.String()
}

func DisplacementSVG(tr *vibration.Trajectory, width, height int) string {
	return LineChartSVG(tr.Displacement(), ChartOptions{
		Width:  width,
		Height: height,
		Title:  "Displacement vs Time",
		XLabel: "Time (s)",
		YLabel: "Displacement (m)",
		Stroke: DisplacementColor,
	})
}

func VelocitySVG(tr *vibration.Trajectory, width, height int) string {
	return LineChartSVG(tr.Velocity(), ChartOptions{
		Width:  width,
		Height: height,
		Title:  "Velocity vs Time",
		XLabel: "Time (s)",
		YLabel: "Velocity (m/s)",
		Stroke: VelocityColor,
	})
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

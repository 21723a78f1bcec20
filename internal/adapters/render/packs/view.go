package packs

import (
	"fmt"
	"time"

	"github.com/bnema/serverpacks/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	Dir string
}

// Render lays out packs as a titled list: a header with the active count, then
// one block per pack.
func Render(packs []application.PackStatus, opts RenderOptions) string {
	s := newStyles()

	active := 0
	for _, pack := range packs {
		if pack.Pack.Active {
			active++
		}
	}

	header := fmt.Sprintf("packs: %d, active: %d", len(packs), active)
	if opts.Dir != "" {
		header = fmt.Sprintf("%s in %s", header, opts.Dir)
	}

	lines := []string{
		s.title.Render("Server Packs"),
		s.header.Render(header),
	}

	if len(packs) == 0 {
		lines = append(lines, s.empty.Render("No server packs installed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, pack := range packs {
		lines = append(lines, s.section.Render(renderPack(pack, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPack(pack application.PackStatus, opts RenderOptions, s styles) string {
	state := s.inactive.Render("[inactive]")
	if pack.Pack.Active {
		state = s.active.Render("[active]")
	}

	title := lipgloss.JoinHorizontal(lipgloss.Top, s.pack.Render(string(pack.Pack.ID)), " ", state)

	parts := []string{
		title,
		s.detail.Render(fmt.Sprintf("size: %s", FormatSize(pack.Pack.Size))),
	}

	if !pack.Pack.ModTime.IsZero() {
		parts = append(parts, s.detail.Render("downloaded: "+formatAge(pack.Pack.ModTime, opts.Now)))
	}
	if pack.Pack.Active {
		parts = append(parts, s.detail.Render(fmt.Sprintf("resources: %d", pack.Resources)))
		if !pack.AddedAt.IsZero() {
			parts = append(parts, s.detail.Render("added: "+formatAge(pack.AddedAt, opts.Now)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormatSize renders a byte count with binary units, e.g. "3.0 MiB".
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGT"[exp])
}

func formatAge(at, now time.Time) string {
	if now.IsZero() || at.After(now) {
		return at.Format(time.RFC3339)
	}

	age := now.Sub(at)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return plural(int(age.Minutes()), "minute") + " ago"
	case age < 24*time.Hour:
		return plural(int(age.Hours()), "hour") + " ago"
	default:
		return plural(int(age.Hours()/24), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

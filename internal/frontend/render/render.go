package render

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/armory/internal/game/armory"
)

// Renderer formats domain values. The zero value renders plain text.
type Renderer struct {
	color bool
}

// New returns a Renderer that emits ANSI colour when color is true.
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

func (r *Renderer) paint(color, text string) string {
	if !r.color {
		return text
	}
	return Colorize(color, text)
}

func (r *Renderer) heading(text string) string {
	return r.paint(BrightYellow, text) + "\n"
}

// Weapon renders the full information sheet: base figures, base and derived
// performance, and each mounted attachment with its modifiers.
func (r *Renderer) Weapon(w *armory.Weapon) string {
	var b strings.Builder
	b.WriteString(r.heading(w.Name))
	fmt.Fprintf(&b, "  Type:        %s\n", w.Type)
	fmt.Fprintf(&b, "  Classes:     %s\n", joinClasses(w.Classes))
	fmt.Fprintf(&b, "  Damage:      chest %g  stomach %g  limb %g  foot %g\n",
		w.Damage.Chest, w.Damage.Stomach, w.Damage.Limb, w.Damage.Foot)
	fmt.Fprintf(&b, "  Range:       %gm\n", w.RangeMeters)
	fmt.Fprintf(&b, "  Fire rate:   %g rpm\n", w.FireRate)

	derived := w.DerivedStats()
	b.WriteString(r.paint(Cyan, "Performance (with attachments):") + "\n")
	r.stat(&b, "Recoil control", derived.RecoilControl, w.Base.RecoilControl)
	r.stat(&b, "Handling speed", derived.HandlingSpeed, w.Base.HandlingSpeed)
	r.stat(&b, "ADS stability", derived.ADSStability, w.Base.ADSStability)
	r.stat(&b, "Hip-fire accuracy", derived.HipFireAccuracy, w.Base.HipFireAccuracy)

	attachments := w.Attachments()
	if len(attachments) > 0 {
		b.WriteString(r.paint(Cyan, "Attachments:") + "\n")
		for _, a := range attachments {
			b.WriteString(r.attachmentLine("  - ", a))
		}
	}
	return b.String()
}

func (r *Renderer) stat(b *strings.Builder, label string, derived, base float64) {
	value := fmt.Sprintf("%g", derived)
	switch {
	case derived > base:
		value = r.paint(Green, value)
	case derived < base:
		value = r.paint(Red, value)
	}
	fmt.Fprintf(b, "  %-18s %s (base %g)\n", label+":", value, base)
}

func (r *Renderer) attachmentLine(prefix string, a armory.Attachment) string {
	line := prefix + r.paint(BrightCyan, a.Name()) + " [" + a.Category().Label() + "]"
	if summary := a.ModSummary(); summary != "" {
		line += " " + r.paint(Dim, summary)
	}
	var flags []string
	if a.CanMountGripSupport() {
		flags = append(flags, "supports grip mount")
	}
	if a.IsDrumMagazine() {
		flags = append(flags, "drum")
	}
	if len(flags) > 0 {
		line += " (" + strings.Join(flags, ", ") + ")"
	}
	return line + "\n"
}

// WeaponList renders one summary line per weapon, numbered from 1.
func (r *Renderer) WeaponList(weapons []*armory.Weapon) string {
	if len(weapons) == 0 {
		return "No weapons stored.\n"
	}
	var b strings.Builder
	for i, w := range weapons {
		fmt.Fprintf(&b, "%d. %s  %s  [%s]  %d attachment(s)\n",
			i+1, r.paint(BrightYellow, w.Name), w.Type, joinClasses(w.Classes), len(w.Attachments()))
	}
	return b.String()
}

// KillStats renders bullets-to-kill per body part and the fastest kill time.
func (r *Renderer) KillStats(name string, ks armory.KillStats) string {
	var b strings.Builder
	b.WriteString(r.heading(fmt.Sprintf("%s vs %g health", name, ks.Health)))
	for _, part := range armory.BodyParts() {
		fmt.Fprintf(&b, "  %-8s %d\n", string(part)+":", ks.BTK[part])
	}
	fmt.Fprintf(&b, "  Fastest kill: %s\n", r.paint(Bold, fmt.Sprintf("%.1f ms", ks.FastestKillMs)))
	return b.String()
}

// KillError renders a weapon whose kill stats are undefined.
func (r *Renderer) KillError(name string, err error) string {
	return r.heading(name) + "  " + r.paint(Red, err.Error()) + "\n"
}

// Slots renders the categories still available on w.
func (r *Renderer) Slots(w *armory.Weapon) string {
	var b strings.Builder
	b.WriteString(r.heading("Available slots on " + w.Name))
	avail := w.AvailableCategories()
	if len(avail) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, c := range avail {
		fmt.Fprintf(&b, "  - %-14s %s\n", c.String(), c.Label())
	}
	return b.String()
}

// Candidates renders a numbered (from 1) list of attachments for category c.
func (r *Renderer) Candidates(c armory.Category, list []armory.Attachment) string {
	var b strings.Builder
	b.WriteString(r.heading("Candidates for " + c.Label()))
	if len(list) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, a := range list {
		b.WriteString(r.attachmentLine(fmt.Sprintf("  %d. ", i+1), a))
	}
	return b.String()
}

// Catalog renders every catalog entry grouped by scope.
func (r *Renderer) Catalog(entries []armory.CatalogEntry) string {
	if len(entries) == 0 {
		return "Catalog is empty.\n"
	}
	var b strings.Builder
	scope := "\x00"
	for _, e := range entries {
		if e.Weapon != scope {
			scope = e.Weapon
			if scope == "" {
				b.WriteString(r.heading("Common"))
			} else {
				b.WriteString(r.heading("Specific to " + scope))
			}
		}
		b.WriteString(r.attachmentLine("  - ", e.Attachment))
	}
	return b.String()
}

// Presets renders the preset table by category, numbered from 1 within each.
func (r *Renderer) Presets(p *armory.Presets) string {
	if p.Len() == 0 {
		return "No presets.\n"
	}
	var b strings.Builder
	for _, c := range p.Categories() {
		b.WriteString(r.heading(c.Label()))
		for i, a := range p.List(c) {
			b.WriteString(r.attachmentLine(fmt.Sprintf("  %d. ", i+1), a))
		}
	}
	return b.String()
}

func joinClasses(classes []armory.SoldierClass) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		out = append(out, string(c))
	}
	return strings.Join(out, ", ")
}

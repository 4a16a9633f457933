package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"penguin/nsmbw"
	"penguin/settings"
)

func (a *app) showCmd() *cobra.Command {
	var slot int
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a summary of a save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if slot < -1 || slot >= nsmbw.SlotCount {
				return fmt.Errorf("--slot %d out of range 0-%d", slot, nsmbw.SlotCount-1)
			}
			s, err := nsmbw.ReadFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("opened save", "path", args[0], "region", s.Header.Region)

			p := newPrinter(cmd.OutOrStdout(), a.settings.Theme)
			if slot < 0 {
				p.header(&s.Header)
			}
			for i := range s.Slots {
				if slot >= 0 && slot != i {
					continue
				}
				p.slot(i, &s.Slots[i])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&slot, "slot", -1, "Only show this slot (0-5)")
	return cmd
}

type printer struct {
	w     io.Writer
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	faint lipgloss.Style
}

// newPrinter renders for w, so colors are dropped when w is not a terminal.
func newPrinter(w io.Writer, theme settings.Theme) *printer {
	accent, text, faint := lipgloss.Color("39"), lipgloss.Color("252"), lipgloss.Color("242")
	if theme == settings.Light {
		accent, text, faint = lipgloss.Color("25"), lipgloss.Color("235"), lipgloss.Color("245")
	}
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(accent),
		label: r.NewStyle().Foreground(faint).Width(22).PaddingLeft(2),
		value: r.NewStyle().Foreground(text),
		faint: r.NewStyle().Foreground(faint),
	}
}

func (p *printer) heading(s string) {
	fmt.Fprintln(p.w, p.title.Render(s))
}

func (p *printer) field(label, value string) {
	fmt.Fprintln(p.w, p.label.Render(label)+p.value.Render(value))
}

func (p *printer) header(h *nsmbw.Header) {
	p.heading("Header")
	p.field("Region", fmt.Sprintf("%s (%s)", h.Region, h.Region.DisplayName()))
	p.field("Last selected", fmt.Sprintf("save slot %d", h.LastSelectedIndex+1))
	p.field("Extra modes worlds", worldList(h.UnlockedWorlds()))
	p.field("Free mode plays", humanize.Comma(int64(gridSum(&h.FreeModePlayCount))))
	p.field("Coin battle plays", humanize.Comma(int64(gridSum(&h.CoinBattlePlayCount))))
	fmt.Fprintln(p.w)
}

func (p *printer) slot(i int, s *nsmbw.Slot) {
	name := fmt.Sprintf("Slot %d", i)
	if i < nsmbw.SaveSlotCount {
		name += fmt.Sprintf(" (save slot %d)", i+1)
	} else {
		name += fmt.Sprintf(" (quick save of slot %d)", i-nsmbw.SaveSlotCount+1)
	}
	if s.CompletionFlags.Has(nsmbw.SaveEmpty) {
		p.heading(name + " " + p.faint.Render("empty"))
		fmt.Fprintln(p.w)
		return
	}
	p.heading(name)

	flags := s.CompletionFlags.Names()
	if len(flags) == 0 {
		flags = []string{"none"}
	}
	p.field("Completion", strings.Join(flags, ", "))
	p.field("Position", fmt.Sprintf("world %d, subworld %d, node %d",
		s.CurrentWorld+1, s.CurrentSubworld, s.CurrentPathNode))
	p.field("Score", humanize.Comma(int64(s.Score)))
	p.field("Credits high score", humanize.Comma(int64(s.StaffCreditsHighScore)))
	p.field("Unlocked worlds", worldList(s.WorldUnlocked))
	p.field("Item stock", joinInts(s.ItemStock[:]))

	for _, pl := range s.Players {
		p.field(pl.Character.String(), fmt.Sprintf("%d lives, %d coins, %s",
			pl.Lives, pl.Coins, pl.Powerup))
	}

	coins, goals := 0, 0
	var mostDeaths uint8
	var deadliest string
	for w := range nsmbw.WorldCount {
		for j := range nsmbw.StageCount {
			f := s.StageCompletion[w][j]
			coins += f.StarCoins()
			if f.Has(nsmbw.GoalNormal) || f.Has(nsmbw.GoalSecret) {
				goals++
			}
			if d := s.DeathCount[w][j]; d > mostDeaths {
				mostDeaths = d
				deadliest = fmt.Sprintf("%d-%s", w+1, nsmbw.StageName(j))
			}
		}
	}
	p.field("Star coins", fmt.Sprint(coins))
	p.field("Stages cleared", fmt.Sprint(goals))
	if mostDeaths > 0 {
		p.field("Most deaths", fmt.Sprintf("%s (%d)", deadliest, mostDeaths))
	}

	bought := 0
	for _, b := range s.HintMovieBought[:nsmbw.PlayableHintMovieCount] {
		if b {
			bought++
		}
	}
	p.field("Hint movies", fmt.Sprintf("%d/%d", bought, nsmbw.PlayableHintMovieCount))
	fmt.Fprintln(p.w)
}

func worldList(worlds [nsmbw.WorldCount]bool) string {
	var out []string
	for i, ok := range worlds {
		if ok {
			out = append(out, fmt.Sprint(i+1))
		}
	}
	if len(out) == 0 {
		return "none"
	}
	return strings.Join(out, " ")
}

func joinInts[T ~uint8 | ~uint16](v []T) string {
	out := make([]string, len(v))
	for i, n := range v {
		out[i] = fmt.Sprint(n)
	}
	return strings.Join(out, " ")
}

func gridSum(g *nsmbw.StageGrid[uint16]) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			n += int(v)
		}
	}
	return n
}

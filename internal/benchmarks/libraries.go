package benchmarks

import (
	"strings"

	mb0 "github.com/mb0/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/htmldiff"
)

type Impl struct {
	Name string
	Diff func(old, new string) string
}

var Impls = []Impl{
	{
		Name: "htmldiff",
		Diff: func(old, new string) string {
			out, err := htmldiff.Diff(old, new)
			if err != nil {
				// Only atomic patterns can fail tokenization and we don't use any.
				panic(err)
			}
			return out
		},
	},
	{
		Name: "htmldiff-strict",
		Diff: func(old, new string) string {
			out, err := htmldiff.Diff(old, new, htmldiff.StrictWhitespace())
			if err != nil {
				panic(err)
			}
			return out
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(old, new string) string {
			// This function works on characters and can tear tags apart, but it's close enough
			// to be comparable.
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(old, new, false)
			diffs = dmp.DiffCleanupSemantic(diffs)

			var sb strings.Builder
			for _, d := range diffs {
				switch d.Type {
				case diffmatchpatch.DiffDelete:
					sb.WriteString("<del>")
					sb.WriteString(d.Text)
					sb.WriteString("</del>")
				case diffmatchpatch.DiffInsert:
					sb.WriteString("<ins>")
					sb.WriteString(d.Text)
					sb.WriteString("</ins>")
				case diffmatchpatch.DiffEqual:
					sb.WriteString(d.Text)
				}
			}
			return sb.String()
		},
	},
	{
		Name: "mb0",
		Diff: func(old, new string) string {
			// This function works on runes and can tear tags apart, but it's close enough to be
			// comparable.
			d := mb0runes{
				a: []rune(old),
				b: []rune(new),
			}
			changes := mb0.Diff(len(d.a), len(d.b), d)
			var sb strings.Builder
			a, b := 0, 0
			for _, ch := range changes {
				for a < ch.A {
					sb.WriteRune(d.a[a])
					a++
					b++
				}
				if ch.Del > 0 {
					sb.WriteString("<del>")
					sb.WriteString(string(d.a[ch.A : ch.A+ch.Del]))
					sb.WriteString("</del>")
					a += ch.Del
				}
				if ch.Ins > 0 {
					sb.WriteString("<ins>")
					sb.WriteString(string(d.b[ch.B : ch.B+ch.Ins]))
					sb.WriteString("</ins>")
					b += ch.Ins
				}
			}
			for a < len(d.a) {
				sb.WriteRune(d.a[a])
				a++
			}
			return sb.String()
		},
	},
}

type mb0runes struct {
	a []rune
	b []rune
}

func (d mb0runes) Equal(i, j int) bool { return d.a[i] == d.b[j] }

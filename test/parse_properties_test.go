package clap_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/IxDay/clap"
)

// Property: a short-flag cluster is equivalent to the separate flags
func TestProperty_Tokenizer_ClusterEquivalentToSeparateFlags(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		letters := rapid.SliceOfNDistinct(
			rapid.RuneFrom([]rune("abcdefgh")),
			1, 6,
			func(r rune) rune { return r },
		).Draw(rt, "letters")

		build := func() *clap.Command {
			cmd := clap.NewCommand("app")
			for _, ch := range letters {
				cmd.Arg(clap.NewArg(string(ch)).Short(ch).Action(clap.ActionSetTrue))
			}
			return cmd
		}

		cluster := "-" + string(letters)
		clustered, err := build().GetMatches([]string{cluster})
		g.Expect(err).NotTo(HaveOccurred())

		var separate []string
		for _, ch := range letters {
			separate = append(separate, "-"+string(ch))
		}
		split, err := build().GetMatches(separate)
		g.Expect(err).NotTo(HaveOccurred())

		for _, ch := range letters {
			g.Expect(clustered.Flag(string(ch))).To(Equal(split.Flag(string(ch))))
		}
	})
}

// Property: repeated count flags total the occurrence count in any packing
func TestProperty_Tokenizer_CountTotalsOccurrences(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		n := rapid.IntRange(1, 8).Draw(rt, "n")

		build := func() *clap.Command {
			return clap.NewCommand("app").
				Arg(clap.NewArg("verbose").Short('v').Action(clap.ActionCount))
		}

		packed, err := build().GetMatches([]string{"-" + strings.Repeat("v", n)})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(packed.GetCount("verbose")).To(Equal(n))

		var argv []string
		for i := 0; i < n; i++ {
			argv = append(argv, "-v")
		}
		separate, err := build().GetMatches(argv)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(separate.GetCount("verbose")).To(Equal(n))
	})
}

// Property: appended values keep argv order
func TestProperty_Tokenizer_AppendPreservesOrder(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		values := rapid.SliceOfN(
			rapid.StringMatching(`[a-z]{1,8}`),
			1, 6,
		).Draw(rt, "values")

		cmd := clap.NewCommand("app").
			Arg(clap.NewArg("include").Short('I').Action(clap.ActionAppend))

		var argv []string
		for _, v := range values {
			argv = append(argv, "-I", v)
		}

		m, err := cmd.GetMatches(argv)
		g.Expect(err).NotTo(HaveOccurred())

		got := m.GetMany("include")
		g.Expect(got).To(HaveLen(len(values)))
		for i, v := range values {
			g.Expect(got[i]).To(Equal(v))
		}
	})
}

// Property: delimiter splitting keeps piece order
func TestProperty_Tokenizer_DelimiterSplitPreservesOrder(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		pieces := rapid.SliceOfN(
			rapid.StringMatching(`[a-z]{1,6}`),
			1, 5,
		).Draw(rt, "pieces")

		cmd := clap.NewCommand("app").
			Arg(clap.NewArg("list").Long("list").
				Action(clap.ActionAppend).
				ValueDelimiter(','))

		m, err := cmd.GetMatches([]string{"--list", strings.Join(pieces, ",")})
		g.Expect(err).NotTo(HaveOccurred())

		got := m.GetMany("list")
		g.Expect(got).To(HaveLen(len(pieces)))
		for i, v := range pieces {
			g.Expect(got[i]).To(Equal(v))
		}
	})
}

// Property: everything after -- lands in trailing, verbatim and in order
func TestProperty_Tokenizer_TrailingVerbatim(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		trailing := rapid.SliceOfN(
			rapid.StringMatching(`-{0,2}[a-z]{1,6}`),
			0, 6,
		).Draw(rt, "trailing")

		cmd := clap.NewCommand("app").
			Arg(clap.NewArg("verbose").Short('v').Action(clap.ActionSetTrue))

		argv := append([]string{"-v", "--"}, trailing...)
		m, err := cmd.GetMatches(argv)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(m.Flag("verbose")).To(BeTrue())
		g.Expect(m.Trailing()).To(Equal(append([]string{}, trailing...)))
	})
}

// Property: parsing the same argv twice yields the same observable matches
func TestProperty_Tokenizer_Deterministic(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		config := rapid.StringMatching(`[a-z]{1,8}`).Draw(rt, "config")
		count := rapid.IntRange(0, 4).Draw(rt, "count")

		cmd := clap.NewCommand("app").
			Arg(clap.NewArg("config").Long("config").Default("d.conf")).
			Arg(clap.NewArg("verbose").Short('v').Action(clap.ActionCount))

		argv := []string{"--config", config}
		for i := 0; i < count; i++ {
			argv = append(argv, "-v")
		}

		first, err := cmd.GetMatches(argv)
		g.Expect(err).NotTo(HaveOccurred())
		second, err := cmd.GetMatches(argv)
		g.Expect(err).NotTo(HaveOccurred())

		g.Expect(first.GetString("config")).To(Equal(second.GetString("config")))
		g.Expect(first.GetCount("verbose")).To(Equal(second.GetCount("verbose")))
		g.Expect(first.IDs()).To(Equal(second.IDs()))
	})
}

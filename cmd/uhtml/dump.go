package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"uhtml/pkg/html"
)

var (
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	posStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Width(8)
	offsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(6).Align(lipgloss.Right)
)

func newDumpCmd(a *app) *cobra.Command {
	var tokens, markupOut bool
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the parsed element tree",
		Long: `Dump parses the markup and prints the element tree with each element's
position and text. With --tokens it prints the raw token stream instead,
which also works for markup the parser would reject. With --markup it
prints the parsed tree back as normalised markup.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readMarkup(cmd, args)
			if err != nil {
				return err
			}
			if tokens {
				return dumpTokens(cmd.OutOrStdout(), markup)
			}
			doc, err := html.Parse(markup, html.WithLogger(a.logger))
			if err != nil {
				return fmt.Errorf("parsing markup: %w", err)
			}
			defer doc.Release()
			if markupOut {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), doc.Serialize())
				return err
			}
			return dumpTree(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().BoolVarP(&tokens, "tokens", "t", false, "print the token stream instead of the tree")
	cmd.Flags().BoolVarP(&markupOut, "markup", "m", false, "print the tree as normalised markup")
	return cmd
}

func dumpTree(w io.Writer, doc *html.Document) error {
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("document (%d elements)", doc.Len()))
	for n := doc.Root(); n != nil; n = n.Next() {
		addNode(tree, n)
	}
	_, err := io.WriteString(w, tree.String())
	return err
}

func addNode(tree treeprint.Tree, n *html.Node) {
	label := nodeLabel(n)
	if n.FirstChild() == nil {
		tree.AddNode(label)
		return
	}
	branch := tree.AddBranch(label)
	for c := n.FirstChild(); c != nil; c = c.Next() {
		addNode(branch, c)
	}
}

func nodeLabel(n *html.Node) string {
	pos := n.Position()
	label := tagStyle.Render("<"+n.Tag()+">") + " " + posStyle.Render(fmt.Sprintf("(%d, %d)", pos.X, pos.Y))
	if n.Text() != "" {
		label += " " + textStyle.Render(strconv.Quote(n.Text()))
	}
	return label
}

func dumpTokens(w io.Writer, markup string) error {
	for tok := range html.NewTokenizer(markup).Tokens() {
		line := offsetStyle.Render(strconv.Itoa(tok.Offset)) + " " + kindStyle.Render(tok.Type.String())
		switch tok.Type {
		case html.TokenStartTag, html.TokenEndTag:
			line += " " + tagStyle.Render(tok.TagName)
			if tok.Style != "" {
				line += " " + strconv.Quote(tok.Style)
			}
			if tok.SelfClosing {
				line += " /"
			}
		case html.TokenText:
			line += " " + textStyle.Render(strconv.Quote(tok.Text))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

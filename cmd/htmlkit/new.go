package main

import (
	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/pkg/node"
	"github.com/htmlkit-dev/htmlkit/pkg/render"
)

func newCmd() *cobra.Command {
	var (
		title  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold a starter page",
		Long: `Write a minimal HTML5 page to get a generated site started.

Examples:
  htmlkit new
  htmlkit new --title="My Site" --output=dist/index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(title, output)
		},
	}

	cmd.Flags().StringVar(&title, "title", "Untitled", "Page title")
	cmd.Flags().StringVarP(&output, "output", "o", "index.html", "Output file")

	return cmd
}

func runNew(title, output string) error {
	page := render.NewPage(title)
	page.AddToBody(
		node.Main(
			node.H1(title),
			node.P("Generated with htmlkit. Edit your generator and re-render."),
		),
	)

	if err := render.SaveFile(output, page.Node()); err != nil {
		return err
	}

	success("wrote %s", output)
	return nil
}

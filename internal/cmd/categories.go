package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/theme"
)

// CategoriesCmd groups the category commands
type CategoriesCmd struct {
	Add  CategoriesAddCmd  `cmd:"add" help:"Add a category"`
	Del  CategoriesDelCmd  `cmd:"del" help:"Delete a category"`
	List CategoriesListCmd `cmd:"list" help:"List categories" default:"1"`
}

// CategoriesListCmd lists the user's categories in order
type CategoriesListCmd struct{}

// Run executes the list command
func (c *CategoriesListCmd) Run(cli *CLI) error {
	categories, err := cli.Container.CategoryService.List(context.Background(), cli.LocalUser())
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println("No categories yet. Add one with: flowpomo categories add NAME")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOLOR")
	for _, category := range categories {
		fmt.Fprintf(w, "%s\t%s %s\n", category.Name, theme.Swatch(category.Color), category.Color)
	}
	return w.Flush()
}

// CategoriesAddCmd adds a category
type CategoriesAddCmd struct {
	Color string `help:"Hex color (#RGB or #RRGGBB); prompts when omitted"`
	Name  string `arg:"" help:"Category name"`
}

// Run executes the add command
func (c *CategoriesAddCmd) Run(cli *CLI) error {
	userID := cli.LocalUser()
	if userID == "" {
		return domain.ErrNoIdentity
	}

	color := c.Color
	if color == "" {
		picked, err := pickColor()
		if err != nil {
			return err
		}
		color = picked
	}

	category, err := cli.Container.CategoryService.Add(context.Background(), userID, c.Name, color)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s %s\n", theme.Swatch(category.Color), category.Name)
	return nil
}

// pickColor asks for a palette color
func pickColor() (string, error) {
	options := make([]huh.Option[string], 0, len(domain.CategoryPalette))
	for _, swatch := range domain.CategoryPalette {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(swatch.Color)).Render("■ " + swatch.Name)
		options = append(options, huh.NewOption(label, swatch.Color))
	}

	color := domain.CategoryPalette[0].Color
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category color").
				Options(options...).
				Value(&color),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("color selection cancelled: %w", err)
	}
	return color, nil
}

// CategoriesDelCmd deletes a category; recorded sessions keep its name
type CategoriesDelCmd struct {
	Name string `arg:"" help:"Category name"`
}

// Run executes the del command
func (c *CategoriesDelCmd) Run(cli *CLI) error {
	userID := cli.LocalUser()
	if userID == "" {
		return domain.ErrNoIdentity
	}

	if err := cli.Container.CategoryService.Delete(context.Background(), userID, c.Name); err != nil {
		return err
	}

	fmt.Printf("Deleted %s\n", c.Name)
	return nil
}

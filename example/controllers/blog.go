package controllers

import "github.com/anvilworks/anvil"

// BlogController demonstrates custom routes with named parameters.
// The more specific edit pattern is declared before the general show
// pattern because the first declared match wins.
type BlogController struct {
	app *anvil.App
}

// NewBlog constructs the controller registered under "blog".
func NewBlog(app *anvil.App) anvil.Controller {
	return &BlogController{app: app}
}

func (b *BlogController) Routes() anvil.RouteTable {
	return anvil.RouteTable{
		{Pattern: "post/:id/edit", Action: "edit"},
		{Pattern: "post/:id", Action: "show"},
	}
}

func (b *BlogController) Actions() map[string]anvil.ActionFunc {
	return map[string]anvil.ActionFunc{
		"index": b.index,
		"show":  b.show,
		"edit":  b.edit,
	}
}

func (b *BlogController) index(c *anvil.Context) error {
	c.View().Set("title", "Blog")
	return c.String("blog index\n")
}

func (b *BlogController) show(c *anvil.Context) error {
	id := c.Param("id")
	c.View().Set("post", id)
	return c.String("post " + c.View().Escape(id) + "\n")
}

func (b *BlogController) edit(c *anvil.Context) error {
	id := c.Param("id")
	c.View().Set("post", id)
	return c.String("editing post " + c.View().Escape(id) + "\n")
}

// Package controllers holds the example application's controllers.
package controllers

import "github.com/anvilworks/anvil"

// HomeController serves the default landing page.
type HomeController struct {
	app *anvil.App
}

// NewHome constructs the controller registered under "index".
func NewHome(app *anvil.App) anvil.Controller {
	return &HomeController{app: app}
}

func (h *HomeController) Routes() anvil.RouteTable {
	return nil
}

func (h *HomeController) Actions() map[string]anvil.ActionFunc {
	return map[string]anvil.ActionFunc{
		"index": h.index,
		"about": h.about,
	}
}

func (h *HomeController) index(c *anvil.Context) error {
	site := c.Config().GetString("site.name")
	c.View().Set("title", site)
	return c.String("welcome to " + c.View().Escape(site) + "\n")
}

func (h *HomeController) about(c *anvil.Context) error {
	c.View().Set("title", "About")
	return c.String("a minimal MVC front controller\n")
}

package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/anvilworks/anvil"
	"github.com/anvilworks/anvil/example/controllers"
	"github.com/anvilworks/anvil/example/listeners"
)

//go:embed listeners/*.go
var listenerFS embed.FS

type serverConfig struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

func main() {
	target := flag.String("q", "", "dispatch a single request target and exit")
	flag.Parse()

	var cfg serverConfig
	if err := envconfig.Process("anvil", &cfg); err != nil {
		log.Fatal(err)
	}

	app := anvil.New(
		anvil.WithConfig("site.name", "Anvil Example"),
		anvil.WithController("index", controllers.NewHome),
		anvil.WithController("blog", controllers.NewBlog),
		anvil.WithListener("audit", listeners.NewAudit),
		anvil.WithListenerFS(listenerFS, "listeners"),
		anvil.WithLogger("example", anvil.RequestIDExtractor()),
	)

	// CLI mode: -q wins over any query source.
	if *target != "" {
		if err := app.Dispatch(anvil.RequestTarget(*target, ""), os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := app.Run(cfg.Addr, anvil.ShutdownTimeout(cfg.ShutdownTimeout)); err != nil {
		log.Fatal(err)
	}
}

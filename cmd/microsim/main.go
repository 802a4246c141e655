package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"microsim/pkg/config"
	"microsim/pkg/particles"
	"microsim/pkg/report"
)

// particleDiameter is the size, in camera pixels, of every placeholder particle
const particleDiameter = 3.0

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.WithError(err).Fatal("microsim failed")
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("microsim", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file (defaults are used when empty or missing)")
	initConfig := fs.String("init-config", "", "Write the default configuration to this path and exit")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *initConfig != "" {
		if err := config.CreateDefaultConfigFile(*initConfig); err != nil {
			return err
		}
		log.WithField("path", *initConfig).Info("Default configuration written")
		return nil
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	if *verbose || cfg.Output.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.WithFields(log.Fields{
		"config":     *configPath,
		"objective":  cfg.Optics.Objective,
		"direct":     cfg.UsesDirectOptics(),
		"wavelength": cfg.Optics.Wavelength,
		"exposure":   cfg.Exposure,
	}).Debug("Configuration resolved")

	model, err := cfg.OpticalModel()
	if err != nil {
		return err
	}
	cam, err := cfg.Camera()
	if err != nil {
		return err
	}

	table := particles.NewPlaceholderTable(particleDiameter)
	log.WithField("particles", table.Len()).Debug("Particle table created")

	rep := report.Build(model, cam, table, cfg.Exposure)
	log.WithFields(log.Fields{
		"resolution":     rep.Resolution,
		"idealPixelSize": rep.IdealPixelSize,
	}).Debug("Optics evaluated")

	return rep.Write(stdout)
}

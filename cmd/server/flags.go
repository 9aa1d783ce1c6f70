package main

import (
	"github.com/dgallion1/bmcanvas/internal/config"
	flag "github.com/spf13/pflag"
)

type serverFlags struct {
	port     string
	sections string
	branding string
	envFile  string
}

// parseFlags reads the command line. args excludes the program name.
func parseFlags(args []string) (*serverFlags, *flag.FlagSet, error) {
	f := &serverFlags{}
	fs := flag.NewFlagSet("bmcanvas", flag.ContinueOnError)
	fs.StringVarP(&f.port, "port", "p", "", "listen port (overrides PORT)")
	fs.StringVarP(&f.sections, "sections", "s", "", "directory of section markdown files (overrides SECTIONS_DIR)")
	fs.StringVarP(&f.branding, "branding", "b", "", "branding YAML file (overrides BRANDING_FILE)")
	fs.StringVar(&f.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

// apply overrides cfg with the flags given on the command line.
func (f *serverFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	if fs.Changed("port") {
		cfg.Port = f.port
	}
	if fs.Changed("sections") {
		cfg.SectionsDir = f.sections
	}
	if fs.Changed("branding") {
		cfg.BrandingFile = f.branding
	}
}

package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"
)

var parser = flags.NewParser(nil, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

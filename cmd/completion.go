package cmd

import (
	"flag"

	"github.com/etnz/stocks/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors are the completions of flags with a known set of values.
var flagPredictors = map[string]complete.Predictor{
	"universe": predict.Files("*.yaml"),
	"currency": predict.Set{"GBP", "USD", "EUR"},
	"type":     predict.Set{"common", "preferred"},
}

// completion returns the completion tree of the application.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagsOf(flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagsOf(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func flagsOf(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

// Complete runs the shell completion when the program is invoked by the shell
// to complete a command line, and returns otherwise.
//
// To install it, run `COMP_INSTALL=1 sss`.
func Complete(name string) {
	completion().Complete(name)
}

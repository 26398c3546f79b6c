// Command jsonpathcheck is a small bench/check runner for ad-hoc JSONPath
// evaluation from the shell: read a document and a path, print what
// matched. It sits outside the module's core contract — nothing under
// internal/ imports it.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/474420502/xjsonpath"
	"github.com/474420502/xjsonpath/internal/core"
)

func main() {
	path := flag.String("path", "", "JSONPath expression, e.g. $.store.book[*].author")
	file := flag.String("file", "", "path to a JSON document; defaults to stdin")
	pretty := flag.Bool("pretty", true, "pretty-print matched values")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	if *path == "" {
		sugar.Fatal("missing required -path flag")
	}

	var data []byte
	var err error
	if *file != "" {
		data, err = os.ReadFile(*file)
	} else {
		data, err = os.ReadFile("/dev/stdin")
	}
	if err != nil {
		sugar.Fatalf("reading document: %v", err)
	}

	expr, err := jsonpath.Compile(*path)
	if err != nil {
		sugar.Fatalf("compiling path: %v", err)
	}

	if *pretty {
		out, err := jsonpath.SelectAsStr(expr, data)
		if err != nil {
			sugar.Fatalf("evaluating path: %v", err)
		}
		v, err := core.Decode([]byte(out))
		if err != nil {
			sugar.Fatalf("re-decoding matches for pretty-printing: %v", err)
		}
		pp, err := core.EncodePretty(v)
		if err != nil {
			sugar.Fatalf("pretty-printing matches: %v", err)
		}
		fmt.Println(string(pp))
		return
	}

	matches, err := jsonpath.Select(expr, data)
	if err != nil {
		sugar.Fatalf("evaluating path: %v", err)
	}
	sugar.Infof("%d match(es)", len(matches))
	for _, m := range matches {
		fmt.Printf("%v\n", m)
	}
}

package main

import (
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"ssq/parser"
	"ssq/web"
	"strings"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging  string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version  VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Tokenize struct {
		Expression string `help:"The expression to tokenize." placeholder:"<expression>" arg:""`
	} `cmd:"" help:"Prints the token sequence for the given expression."`
	Parse struct {
		Expression string `help:"The expression to parse." placeholder:"<expression>" arg:""`
	} `cmd:"" help:"Parses the given expression and prints its AST."`
	Server struct {
		Port string `help:"The port the server listens on." default:"8080"`
	} `cmd:"" help:"Starts the HTTP API to parse expressions."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("Simple SQL queries"),
		kong.Description("Lexer and expression parser for a small SQL-like query language."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	switch ctx.Command() {
	case "tokenize <expression>":
		tokens, err := parser.Tokenize(cli.Tokenize.Expression)
		sigolo.FatalCheck(err)

		for _, token := range tokens {
			fmt.Println(token)
		}
	case "parse <expression>":
		expression, err := parser.ParseExpressionString(cli.Parse.Expression)
		sigolo.FatalCheck(err)

		fmt.Println(expression)
	case "server":
		web.StartServer(cli.Server.Port)
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/ibrahimcesar/lolli/pkg/workbench"
	"github.com/robertkrimen/isatty"
)

var url = flag.String("url", "ws://localhost:9000/ws", "URL of workbench server to connect to")

func main() {
	// get cmdline flags
	flag.Parse()

	// connect to server
	client, connErr := workbench.NewClient(*url)
	if connErr != nil {
		fmt.Println("couldn't connect:", connErr)
		os.Exit(1)
		return
	}
	defer client.Close()

	// check if is TTY
	isInputTty := isatty.Check(os.Stdin.Fd())

	if isInputTty {
		fmt.Println("lolli shell")
		fmt.Println("\\h for help")
	}

	// initialize readline
	prompt := ""
	if isInputTty {
		prompt = fmt.Sprintf("%s> ", *url)
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       "/tmp/.lolli-history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, readlineErr := l.Readline()
		if readlineErr != nil {
			fmt.Println("bye!")
			os.Exit(0)
		}

		if line == `\h` {
			printHelp()
			continue
		}

		if len(strings.Trim(line, "\t ")) == 0 {
			continue
		}

		runStatement(client, line)
	}
}

func printHelp() {
	fmt.Println(`\h	help`)
	fmt.Println(`statements:`)
	fmt.Println(`  parse <formula>`)
	fmt.Println(`  prove <sequent> [depth <n>]`)
	fmt.Println(`  extract <sequent> [normalize]`)
	fmt.Println(`  viz (tree|latex|dot) <sequent>`)
	fmt.Println(`  codegen <sequent>`)
	fmt.Println(`  save <name> <sequent>`)
	fmt.Println(`  load <name>`)
	fmt.Println(`  list`)
	fmt.Println(`sequent syntax: A * B |- C, or |- A | A^`)
}

func runStatement(client *workbench.Client, stmt string) {
	pending := client.Statement(stmt)
	printMessage(pending, <-pending.Updates)
}

func printMessage(pending *workbench.ClientStatement, msg *workbench.MessageToClient) {
	fmt.Printf("stmt %d: ", pending.StatementID)
	if msg.AckMessage != nil {
		fmt.Println("ack", *msg.AckMessage)
		return
	}
	if msg.ErrorMessage != nil {
		fmt.Println("error", *msg.ErrorMessage)
		return
	}
	if msg.ResultMessage != nil {
		if msg.ResultMessage.Provable != nil {
			if *msg.ResultMessage.Provable {
				fmt.Println("PROVABLE")
			} else {
				fmt.Println("NOT PROVABLE")
			}
		} else {
			fmt.Println()
		}
		fmt.Println(msg.ResultMessage.Output)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/ibrahimcesar/lolli/pkg/workbench"
)

var url = flag.String("url", "ws://localhost:9000/ws", "url of workbench server to connect to")
var numStatements = flag.Int("numStatements", 10000000000, "number of statements to run")
var save = flag.Bool("save", false, "save every proved theorem")

var atoms = []string{"A", "B", "C", "D", "E"}

// Each template yields a provable sequent over two atoms.
var templates = []func(a, b string) string{
	func(a, b string) string { return fmt.Sprintf("|- %s -o %s", a, a) },
	func(a, b string) string { return fmt.Sprintf("|- %s^ | %s", a, a) },
	func(a, b string) string { return fmt.Sprintf("%s * %s |- %s * %s", a, b, b, a) },
	func(a, b string) string { return fmt.Sprintf("%s |- %s & %s", a, a, a) },
	func(a, b string) string { return fmt.Sprintf("%s |- %s + %s", a, a, b) },
	func(a, b string) string { return fmt.Sprintf("!%s |- ?%s", a, a) },
	func(a, b string) string { return "|- bot, 1" },
}

func main() {
	flag.Parse()

	client, err := workbench.NewClient(*url)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("running statements")
	for i := 0; i < *numStatements; i++ {
		a := atoms[rand.Intn(len(atoms))]
		b := atoms[rand.Intn(len(atoms))]
		seq := templates[rand.Intn(len(templates))](a, b)

		if _, err := client.Run("prove " + seq); err != nil {
			log.Fatal(err)
		}
		if _, err := client.Run("extract " + seq + " normalize"); err != nil {
			log.Fatal(err)
		}
		if *save {
			name := fmt.Sprintf("thm_%d", i)
			if _, err := client.Exec(fmt.Sprintf("save %s %s", name, seq)); err != nil {
				log.Fatal(err)
			}
		}

		if i%500 == 0 {
			log.Println("statements run:", i)
		}
	}
}

package partition_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/FrenchMajesty/partition"
)

// Example shows basic usage of the partitioner
func Example_basic() {
	dir, err := os.MkdirTemp("", "partition")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	p, err := partition.New(partition.Config{
		StatePath:    filepath.Join(dir, "labels.bin"),
		AutoRegister: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	p.Union("expressing_gratitude", "saying_thanks")
	p.Union("technical_question", "tech_query")
	p.Union("tech_query", "asking_technical")

	rep, _ := p.Find("asking_technical")
	fmt.Println("Representative:", rep)
	fmt.Println("Classes:", p.Classes())

	// Gracefully shutdown and save state
	if err := p.Close(); err != nil {
		log.Fatal(err)
	}
	// Output:
	// Representative: tech_query
	// Classes: [[asking_technical tech_query technical_question] [expressing_gratitude saying_thanks]]
}

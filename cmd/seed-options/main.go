package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
	"github.com/owlpost/lumos/internal/repository"
	"github.com/owlpost/lumos/internal/service"
)

func main() {
	// Flags for customization
	host := flag.String("host", "localhost", "SurrealDB host")
	port := flag.String("port", "8000", "SurrealDB port")
	user := flag.String("user", "root", "SurrealDB user")
	password := flag.String("password", "root", "SurrealDB password")
	namespace := flag.String("namespace", "lumos", "SurrealDB namespace")
	dbName := flag.String("database", "main", "SurrealDB database")
	file := flag.String("file", "", "JSON file with option lists (default: built-in defaults)")
	force := flag.Bool("force", false, "Overwrite an existing options document")

	flag.Parse()

	options := model.DefaultOptions()
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *file, err)
			os.Exit(1)
		}
		if err := json.Unmarshal(data, &options); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", *file, err)
			os.Exit(1)
		}
	}

	db := database.NewSurrealDB(database.Config{
		Host:      *host,
		Port:      *port,
		User:      *user,
		Password:  *password,
		Namespace: *namespace,
		Database:  *dbName,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	optionsService := service.NewOptionsService(repository.NewOptionsRepository(db))

	if !*force {
		if existing, err := optionsService.Get(ctx); err == nil && existing != nil {
			fmt.Println("Options document already exists. Use -force to overwrite.")
			return
		}
	}

	if err := optionsService.Seed(ctx, options); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding options: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Options document seeded.")

	fmt.Printf("Houses:              %d\n", len(options.Houses))
	fmt.Printf("Wand cores:          %d\n", len(options.WandCores))
	fmt.Printf("Wand woods:          %d\n", len(options.WandWoods))
	fmt.Printf("Patronuses:          %d\n", len(options.Patronuses))
	fmt.Printf("Quidditch positions: %d\n", len(options.QuidditchPositions))
	fmt.Printf("Hogwarts years:      %d\n", len(options.HogwartsYears))
}

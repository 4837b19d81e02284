package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"trivia/internal/datastore"
	"trivia/internal/models"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "migrate",
		Commands: []*cli.Command{
			commandMigration(),
			commandSeed(),
			commandImport(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandMigration() *cli.Command {
	return &cli.Command{
		Name: "migrate",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableCategory(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableQuestion(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			fmt.Println("Migration success")

			return nil
		},
	}
}

// insert the default categories and a small starter question set
func commandSeed() *cli.Command {
	return &cli.Command{
		Name:        "seed",
		Description: "Insert default categories and starter questions",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			existing, err := datastore.GetCategories(ctx, db)
			if err != nil {
				log.Fatal(err)
			}
			if len(existing) > 0 {
				fmt.Println("Categories already present, skipping seed")
				return nil
			}

			categories := []*models.Category{
				{Type: "Science"},
				{Type: "Art"},
				{Type: "Geography"},
				{Type: "History"},
				{Type: "Entertainment"},
				{Type: "Sports"},
			}

			byType := map[string]int{}
			for _, category := range categories {
				if err := datastore.InsertCategory(ctx, db, category); err != nil {
					log.Fatal(err)
				}
				byType[category.Type] = category.ID
			}

			questions := []*models.Question{
				{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: byType["History"], Difficulty: 1},
				{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: byType["Science"], Difficulty: 4},
				{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: byType["Geography"], Difficulty: 3},
				{Question: "Which Dutch graphic artist was initialed M C?", Answer: "Escher", Category: byType["Art"], Difficulty: 1},
				{Question: "What movie earned Tom Hanks his third straight Oscar nomination in 1996?", Answer: "Apollo 13", Category: byType["Entertainment"], Difficulty: 4},
				{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: byType["Sports"], Difficulty: 4},
			}

			for _, question := range questions {
				if err := datastore.InsertQuestion(ctx, db, question); err != nil {
					log.Fatal(err)
				}
			}

			fmt.Println("Seed success")

			return nil
		},
	}
}

// bulk import from a csv of question,answer,category,difficulty rows
func commandImport() *cli.Command {
	return &cli.Command{
		Name: "import",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Value: "./questions.csv",
			},
			&cli.IntFlag{
				Name:  "category",
				Usage: "override the category column for every row",
			},
		},
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				return err
			}

			inputPath := c.String("input")
			file, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer file.Close()

			r := csv.NewReader(file)

			// header
			_, err = r.Read()
			if err != nil {
				return err
			}

			category := c.Int("category")

			imported := 0
			for {
				record, err := r.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}

				if len(record) < 4 {
					log.Println("invalid record length", record)
					continue
				}

				questionCategory := category
				if questionCategory == 0 {
					questionCategory, err = strconv.Atoi(strings.TrimSpace(record[2]))
					if err != nil {
						log.Println("invalid record category", record[0])
						continue
					}
				}

				difficulty, err := strconv.Atoi(strings.TrimSpace(record[3]))
				if err != nil {
					log.Println("invalid record difficulty", record[0])
					continue
				}

				question := &models.Question{
					Question:   strings.TrimSpace(record[0]),
					Answer:     strings.TrimSpace(record[1]),
					Category:   questionCategory,
					Difficulty: difficulty,
				}

				if err := datastore.InsertQuestion(ctx, db, question); err != nil {
					return err
				}
				imported++
			}

			fmt.Println("Imported", imported, "questions")

			return nil
		},
	}
}

func getDb() (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(os.Getenv("DB_DSN")),
		pgdriver.WithPassword(os.Getenv("DB_PASSWORD")),
	))

	return bun.NewDB(sqldb, pgdialect.New()), nil
}

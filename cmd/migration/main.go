package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"gitlab.com/tomas.hradek/address-book/internal/config"
	"gitlab.com/tomas.hradek/address-book/internal/store"
)

// Usage example on the command line:
// > DBHOST=localhost:3306 DBUSER=tomas DBPWD=changeit go run main.go -file=../../scripts/database.sql
func main() {
	sqlDB, err := store.Open(config.LoadDatabase())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection")
	}
	db := sqlx.NewDb(sqlDB, "mysql")
	defer db.Close()

	filePtr := flag.String("file", "database.sql", "the sql file to execute")
	flag.Parse()

	readFile, err := os.Open(*filePtr) // nosemgrep
	if err != nil {
		log.Fatal().Err(err).Str("file", *filePtr).Msg("open migration file")
	}
	defer readFile.Close()

	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	for fileScanner.Scan() {
		line := fileScanner.Text()
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			sql := builder.String()
			db.MustExec(sql)
			builder = strings.Builder{}
		}
	}
}

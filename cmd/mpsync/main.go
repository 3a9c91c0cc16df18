// mpsync downloads MoneyPuck season summary files and loads them into a
// local SQLite database, one row per player, line or team per season.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tonyprice/nhldata/internal/config"
	"github.com/tonyprice/nhldata/internal/storage"
	"github.com/tonyprice/nhldata/moneypuck"
	"github.com/tonyprice/nhldata/record"
)

// entityColumns names the identifying column of each season summary file.
var entityColumns = map[string]string{
	"skaters": "playerId",
	"goalies": "playerId",
	"lines":   "lineId",
	"teams":   "team",
}

func main() {
	if err := run(); err != nil {
		slog.Error("Error running sync", "error", err)
		os.Exit(1)
	}
}

func run() error {
	files := flag.String("files", "skaters,goalies,lines,teams", "comma-separated file types to sync")
	seasonsArg := flag.String("seasons", "", "seasons to sync, e.g. 2021,2022 or 2008-2023")
	gametype := flag.String("gametype", "regular", "regular or playoffs")
	dbPath := flag.String("db", "", "database path, overrides DATABASE_PATH")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	seasons, err := parseSeasons(*seasonsArg)
	if err != nil {
		return err
	}

	path := *dbPath
	if path == "" {
		db, err := config.NewDatabase()
		if err != nil {
			return err
		}
		path = db.Path
	}

	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		return err
	}

	mp := moneypuck.New()

	for _, fileType := range strings.Split(*files, ",") {
		fileType = strings.TrimSpace(fileType)
		for _, season := range seasons {
			slog.Info("Syncing", "file", fileType, "season", season, "gametype", *gametype)

			seq, err := mp.SeasonStats(fileType, []int{season}, *gametype)
			if err != nil {
				return err
			}

			rows, err := toRows(fileType, season, *gametype, seq)
			if err != nil {
				return err
			}
			if err := store.UpsertRows(rows); err != nil {
				return err
			}
			if err := store.LogSyncRun(fileType, *gametype, season, len(rows)); err != nil {
				return err
			}

			slog.Info("Synced", "file", fileType, "season", season, "rows", len(rows))
		}
	}
	return nil
}

func toRows(fileType string, season int, gametype string, seq record.Sequence) ([]storage.Row, error) {
	idColumn := entityColumns[fileType]
	rows := make([]storage.Row, 0, len(seq))
	for _, rec := range seq {
		id, ok := rec[idColumn]
		if !ok {
			return nil, fmt.Errorf("%s row for season %d has no %s column", fileType, season, idColumn)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, storage.Row{
			FileType: fileType,
			Season:   season,
			GameType: gametype,
			EntityID: fmt.Sprint(id),
			Data:     string(data),
		})
	}
	return rows, nil
}

// parseSeasons accepts "2021,2022" or an inclusive range "2008-2023".
func parseSeasons(arg string) ([]int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, fmt.Errorf("no seasons given, use -seasons")
	}

	if start, end, ok := strings.Cut(arg, "-"); ok {
		from, err1 := strconv.Atoi(start)
		to, err2 := strconv.Atoi(end)
		if err1 != nil || err2 != nil || to < from {
			return nil, fmt.Errorf("invalid season range %q", arg)
		}
		seasons := make([]int, 0, to-from+1)
		for y := from; y <= to; y++ {
			seasons = append(seasons, y)
		}
		return seasons, nil
	}

	var seasons []int
	for _, part := range strings.Split(arg, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid season %q", part)
		}
		seasons = append(seasons, y)
	}
	return seasons, nil
}

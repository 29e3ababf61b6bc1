// Command inspect dumps Badger records of a stopped (or running, read-only)
// chatcast server as a table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"chatcast/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:, room:, conn:, idx:room:)")
	limit := flag.Int("limit", 200, "Maximum rows to print")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Created", "Room", "Detail", "TTL"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes) && rows < *limit; it.Next() {
			item := it.Item()
			key := string(item.Key())
			ttl := ""
			if item.ExpiresAt() > 0 {
				ttl = fmt.Sprintf("%d", item.ExpiresAt())
			}

			err := item.Value(func(v []byte) error {
				table.Append(append(describe(key, v), ttl))
				return nil
			})
			if err != nil {
				return err
			}
			rows++
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	color.Info.Printf("%d record(s) under %q\n", rows, *prefix)
}

// describe returns key, type, created, room and detail columns.
func describe(key string, v []byte) []string {
	switch {
	case strings.HasPrefix(key, "msg:"):
		item, err := storage.Unmarshal(v)
		if err != nil {
			return []string{key, color.Red.Sprint("MESSAGE"), "", "", "unmarshal failed: " + err.Error()}
		}
		message, err := storage.MessageFromItem(item)
		if err != nil {
			return []string{key, color.Red.Sprint("MESSAGE"), "", "", err.Error()}
		}
		return []string{
			key,
			color.Green.Sprint("MESSAGE"),
			message.CreatedAt.Format("2006-01-02 15:04:05.000"),
			message.RoomID,
			fmt.Sprintf("%s: %s", message.Username, message.Text),
		}
	case strings.HasPrefix(key, "idx:"):
		return []string{key, color.Gray.Sprint("INDEX"), "", "", ""}
	case strings.HasPrefix(key, "conn:"):
		return []string{key, color.Cyan.Sprint("CONNECTION"), "", "", string(v)}
	case strings.HasPrefix(key, "room:"):
		return []string{key, color.Yellow.Sprint("ROOM"), "", "", string(v)}
	}
	return []string{key, "RAW", "", "", string(v)}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}

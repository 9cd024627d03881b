// Command inspect dumps the conversation records of a BadgerDB directory as
// a table: kind, roster size, last message and unread counters.
package main

import (
	"alumni-chat/domain/chat"
	"alumni-chat/repositories"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerPath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	// INSPECT_COLOURS highlights conversations with pending unread messages
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	dbPath := flag.String("db", cfg.BadgerPath, "Path to badger DB")
	participant := flag.String("participant", "", "Only show conversations of this participant")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	conversations, skipped, err := scan(db)
	if err != nil {
		log.Fatal(err)
	}
	if *participant != "" {
		conversations = filterParticipant(conversations, *participant)
	}
	render(os.Stdout, conversations, cfg.Colours, time.Now().UTC())
	if skipped > 0 {
		fmt.Fprintln(os.Stderr, color.Yellow.Sprintf("%d undecodable records skipped", skipped))
	}
}

// scan decodes every "conv:" record; broken records are counted, not fatal.
func scan(db *badger.DB) ([]chat.Conversation, int, error) {
	var conversations []chat.Conversation
	skipped := 0
	prefix := []byte("conv:")
	err := db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				c, err := repositories.DecodeConversation(val)
				if err != nil {
					skipped++
					return nil
				}
				conversations = append(conversations, c)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastActivity().After(conversations[j].LastActivity())
	})
	return conversations, skipped, err
}

func filterParticipant(conversations []chat.Conversation, participantID string) []chat.Conversation {
	var kept []chat.Conversation
	for _, c := range conversations {
		if c.HasParticipant(participantID) {
			kept = append(kept, c)
		}
	}
	return kept
}

func render(w io.Writer, conversations []chat.Conversation, colours bool, now time.Time) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Kind", "Name", "Members", "Last message", "Unread", "Activity"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, c := range conversations {
		unread := unreadSummary(c)
		if colours && unread != "-" {
			unread = color.Red.Sprint(unread)
		}
		table.Append([]string{
			c.ID,
			string(c.Kind),
			c.Name,
			strconv.Itoa(c.MemberCount),
			c.LastMessageDisplayText(),
			unread,
			chat.TimeAgo(c.LastActivity(), now),
		})
	}
	table.Render()
}

// unreadSummary lists the participants with a positive counter, sorted.
func unreadSummary(c chat.Conversation) string {
	var parts []string
	for id, n := range c.UnreadCounts {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", id, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

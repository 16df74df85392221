package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ytkit/ytkit/client"
)

func main() {
	var (
		video    = flag.String("v", "", "video id or URL")
		playlist = flag.String("l", "", "playlist id or URL")
		channel  = flag.String("c", "", "channel id or URL")
		related  = flag.Bool("related", false, "list videos related to -v instead of its streams")
		itag     = flag.Int("itag", 0, "resolve a playable URL for this itag")
		cookies  = flag.String("cookies", "", "Netscape cookies.txt file")
		proxy    = flag.String("proxy", "", "proxy URL")
	)
	flag.Parse()

	if *video == "" && *playlist == "" && *channel == "" {
		fmt.Println("Usage: ytkit -v <video id or URL> [-itag N | -related] | -l <playlist id or URL> | -c <channel id or URL>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	c, err := client.New(client.Config{
		ProxyURL:   *proxy,
		CookieFile: *cookies,
		Logger:     stderrLogger{},
	})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch {
	case *playlist != "":
		listPlaylist(ctx, c, *playlist)
	case *channel != "":
		showChannel(ctx, c, *channel)
	case *related:
		listRelated(ctx, c, *video)
	case *itag != 0:
		resolveURL(ctx, c, *video, *itag)
	default:
		showVideo(ctx, c, *video)
	}
}

func showVideo(ctx context.Context, c *client.Client, input string) {
	info, err := c.Video(ctx, input)
	if err != nil {
		log.Fatalf("Error fetching video: %v", err)
	}
	fmt.Printf("Title:    %s\n", info.Title)
	fmt.Printf("Author:   %s\n", info.Author)
	fmt.Printf("Duration: %ds\n", info.DurationSec)
	fmt.Printf("Views:    %d\n", info.ViewCount)

	streams, err := c.Streams(ctx, input)
	if err != nil {
		log.Fatalf("Error fetching streams: %v", err)
	}
	fmt.Printf("Found %d streams:\n", len(streams))
	for _, s := range streams {
		ciphered := ""
		if s.Ciphered {
			ciphered = " (ciphered)"
		}
		fmt.Printf("[%d] %s %s %d kbps%s\n",
			s.Itag, s.QualityLabel, s.MimeType, s.Bitrate/1000, ciphered)
	}
}

func resolveURL(ctx context.Context, c *client.Client, input string, itag int) {
	resolved, err := c.ResolveStreamURL(ctx, input, itag)
	if err != nil {
		log.Fatalf("Error resolving stream url: %v", err)
	}
	fmt.Println(resolved)
}

func listPlaylist(ctx context.Context, c *client.Client, input string) {
	pager, err := c.Playlist(input)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	n := 0
	for v, err := range pager.Videos(ctx) {
		if err != nil {
			log.Fatalf("Error listing playlist: %v", err)
		}
		n++
		marker := ""
		if !v.Playable {
			marker = " [unavailable]"
		}
		fmt.Printf("%4d. %s  %s (%ss)%s\n", n, v.ID, v.Title, v.LengthSeconds, marker)
	}
}

func showChannel(ctx context.Context, c *client.Client, input string) {
	info, err := c.Channel(ctx, input)
	if err != nil {
		log.Fatalf("Error fetching channel: %v", err)
	}
	fmt.Printf("Title:       %s\n", info.Title)
	fmt.Printf("Subscribers: %s\n", info.Subscribers)
	fmt.Printf("Views:       %s\n", info.ViewCount)
	fmt.Printf("Country:     %s\n", info.Country)
	fmt.Printf("Joined:      %s\n", info.JoinedDate)

	pager, err := c.ChannelUploads(input)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Println("Uploads:")
	n := 0
	for v, err := range pager.Videos(ctx) {
		if err != nil {
			log.Fatalf("Error listing uploads: %v", err)
		}
		n++
		fmt.Printf("%4d. %s  %s (%ss)\n", n, v.ID, v.Title, v.LengthSeconds)
	}
}

func listRelated(ctx context.Context, c *client.Client, input string) {
	related, err := c.RelatedVideos(ctx, input)
	if err != nil {
		log.Fatalf("Error fetching related videos: %v", err)
	}
	for i, v := range related {
		fmt.Printf("%4d. %s  %s by %s (%s, %s)\n", i+1, v.ID, v.Title, v.Author, v.Length, v.ViewCount)
	}
}

type stderrLogger struct{}

func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

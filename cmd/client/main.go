package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/ortoo/internal/adapter"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: ortoo-client [flags] <command> [args]

commands:
  register             create an account (-email, -password, -name)
  login                sign in (-email, -password)
  users                list registered users
  feed                 list published posts
  get <id>             show a single post
  mine                 list your posts, drafts included (-token)
  post <description>   create a draft (-token)
  publish <id>         publish your draft (-token)

flags:
`

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "server base URL")
	timeout := flag.Duration("timeout", 15*time.Second, "per-request timeout")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	name := flag.String("name", "", "display name for registration")
	token := flag.String("token", os.Getenv("ORTOO_TOKEN"), "bearer token for signed-in commands")
	version := flag.Bool("version", false, "print build info and exit")

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	api := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *baseURL,
		Timeout: *timeout,
	})
	if *token != "" {
		api.SetToken(*token)
	}

	ctx := context.Background()

	var (
		result any
		err    error
	)

	switch command := args[0]; command {
	case "register":
		var user any
		user, err = api.Register(ctx, *email, *password, *name)
		result = map[string]any{"user": user, "token": api.Token()}
	case "login":
		var user any
		user, err = api.Login(ctx, *email, *password)
		result = map[string]any{"user": user, "token": api.Token()}
	case "users":
		result, err = api.ListUsers(ctx)
	case "feed":
		result, err = api.Feed(ctx)
	case "get":
		var postID int64
		if postID, err = parseIDArg(args); err == nil {
			result, err = api.GetPost(ctx, postID)
		}
	case "mine":
		result, err = api.ListMine(ctx)
	case "post":
		if len(args) < 2 {
			err = fmt.Errorf("post: missing description")
			break
		}
		result, err = api.CreatePost(ctx, strings.Join(args[1:], " "))
	case "publish":
		var postID int64
		if postID, err = parseIDArg(args); err == nil {
			result, err = api.Publish(ctx, postID)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	if err := out.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseIDArg(args []string) (int64, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s: missing post id", args[0])
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid post id %q", args[0], args[1])
	}
	return id, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

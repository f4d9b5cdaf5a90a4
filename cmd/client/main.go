package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/BerylCAtieno/socialsense/internal/api"
	"github.com/BerylCAtieno/socialsense/internal/models"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
)

const defaultProfilePath = "socialsense_profile.json"

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 3 * time.Minute,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the comment service")
	mode := flag.String("test", "all", "What to run: all, health, scrape, generate, init-profile")
	postURL := flag.String("post", "", "Instagram post link")
	profilePath := flag.String("profile", defaultProfilePath, "Path to the business profile JSON file")
	regenerate := flag.Int("regenerate", 0, "Extra generation rounds for the same post")
	flag.Parse()

	c := NewClient(*baseURL)

	printHeader("SocialSense - Comment Client")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, c.baseURL, colorReset)

	switch *mode {
	case "health":
		exitOn(c.health())
	case "init-profile":
		exitOn(saveProfile(*profilePath, exampleProfile()))
		printSuccess(fmt.Sprintf("Wrote example profile to %s; edit it and add your Gemini API key", *profilePath))
	case "scrape":
		requirePost(*postURL)
		post, err := c.scrape(*postURL)
		exitOn(err)
		printPost(post)
	case "generate", "all":
		requirePost(*postURL)
		profile, err := loadProfile(*profilePath)
		exitOn(err)

		post, err := c.scrape(*postURL)
		exitOn(err)
		printPost(post)

		for round := 0; round <= *regenerate; round++ {
			if round > 0 {
				printTestHeader(fmt.Sprintf("Regenerating (round %d)", round))
			}
			comments, err := c.generate(post.PostData, *profile)
			exitOn(err)
			printComments(comments)
		}
	default:
		printError(fmt.Sprintf("Unknown mode: %s", *mode))
		fmt.Println("\nAvailable modes: all, health, scrape, generate, init-profile")
		os.Exit(1)
	}
}

func (c *Client) health() error {
	printTestHeader("Checking service health")

	resp, err := c.client.Get(c.baseURL + "/health")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	printSuccess("Service is healthy")
	return nil
}

func (c *Client) scrape(postURL string) (*api.ScrapeResponse, error) {
	printTestHeader("Fetching post")
	fmt.Printf("POST %s/scrape\n", c.baseURL)

	var out api.ScrapeResponse
	status, body, err := c.postJSON("/scrape", api.ScrapeRequest{URL: postURL}, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("scrape returned %d: %s", status, body)
	}

	if out.Error != "" {
		fmt.Printf("%s! %s: %s%s\n", colorYellow, out.Error, out.Details, colorReset)
	} else {
		printSuccess("Post fetched")
	}
	return &out, nil
}

func (c *Client) generate(post models.PostData, profile models.BusinessProfile) ([]string, error) {
	printTestHeader("Generating comments")
	fmt.Printf("POST %s/generate\n", c.baseURL)

	var out api.GenerateResponse
	status, body, err := c.postJSON("/generate", api.GenerateRequest{PostData: post, BusinessProfile: profile}, &out)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		printSuccess(fmt.Sprintf("Received %d comment(s)", len(out.Comments)))
		return out.Comments, nil
	case http.StatusUnauthorized:
		var errResp api.ErrorResponse
		_ = json.Unmarshal(body, &errResp)
		return errResp.Comments, fmt.Errorf("%s: %s", errResp.Error, strings.Join(errResp.Comments, " "))
	default:
		var errResp api.ErrorResponse
		_ = json.Unmarshal(body, &errResp)
		return nil, fmt.Errorf("generate returned %d: %s %s", status, errResp.Error, errResp.Details)
	}
}

func (c *Client) postJSON(path string, payload any, out any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, body, fmt.Errorf("invalid JSON response: %w", err)
		}
	}
	return resp.StatusCode, body, nil
}

// loadProfile reads the single stored profile and checks its required fields.
func loadProfile(path string) (*models.BusinessProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile (run with -test init-profile first): %w", err)
	}

	var profile models.BusinessProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse business profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// saveProfile replaces the stored profile wholesale.
func saveProfile(path string, profile models.BusinessProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func exampleProfile() models.BusinessProfile {
	return models.BusinessProfile{
		Name:           "Acme Coffee",
		Niche:          "Specialty coffee",
		TargetAudience: "Remote workers who love good coffee",
		Tone:           models.ToneFriendly,
		USP:            "Single-origin beans roasted every morning",
		Website:        "https://example.com",
	}
}

func requirePost(postURL string) {
	if postURL == "" {
		printError("An Instagram post link is required. Use -post")
		os.Exit(1)
	}
}

func exitOn(err error) {
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func printPost(post *api.ScrapeResponse) {
	fmt.Printf("\n%sPost Preview:%s\n", colorPurple, colorReset)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("@%s  (%s)\n", post.Username, post.Type)
	fmt.Printf("%d likes, %d comments\n", post.Likes, post.CommentsCount)
	if post.MediaURL != "" {
		fmt.Printf("Media: %s\n", post.MediaURL)
	}
	fmt.Printf("\n%s\n", post.Caption)
	if len(post.Hashtags) > 0 {
		fmt.Printf("\n%s\n", strings.Join(post.Hashtags, " "))
	}
	fmt.Println(strings.Repeat("=", 80))
}

func printComments(comments []string) {
	fmt.Printf("\n%sSuggested Comments:%s\n", colorGreen, colorReset)
	for i, comment := range comments {
		fmt.Printf("%2d. %s\n", i+1, comment)
	}
	fmt.Println()
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[RUN] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

package utils

import (
	"errors"
	"fmt"

	"kabulearn/config"

	"github.com/go-resty/resty/v2"
)

// ErrCMSArticleNotFound signals that the CMS has no article with that id.
var ErrCMSArticleNotFound = errors.New("cms article not found")

// CMSArticle mirrors the article content type on the headless CMS.
type CMSArticle struct {
	ID           string `json:"id"`
	CreatedAt    string `json:"createdAt"`
	PublishedAt  string `json:"publishedAt"`
	Title        string `json:"title"`
	Introduction string `json:"introduction"`
	Body         string `json:"body"`
	IsPaid       bool   `json:"isPaid"`
	Price        int    `json:"price"`
	Category     []string `json:"category"`
	Thumbnail    *struct {
		URL    string `json:"url"`
		Height int    `json:"height"`
		Width  int    `json:"width"`
	} `json:"thumbnail"`
}

type cmsListResponse struct {
	Contents   []CMSArticle `json:"contents"`
	TotalCount int          `json:"totalCount"`
}

func cmsEndpoint() (string, error) {
	domain := config.AppConfig.MicroCMSServiceDomain
	if domain == "" {
		return "", fmt.Errorf("MICROCMS_SERVICE_DOMAIN is not configured")
	}
	return fmt.Sprintf("https://%s.microcms.io/api/v1/articles", domain), nil
}

// FetchCMSArticles lists CMS articles, newest published first.
func FetchCMSArticles() ([]CMSArticle, error) {
	endpoint, err := cmsEndpoint()
	if err != nil {
		return nil, err
	}

	client := resty.New()

	var result cmsListResponse
	resp, err := client.R().
		SetHeader("X-MICROCMS-API-KEY", config.AppConfig.MicroCMSAPIKey).
		SetQueryParam("orders", "-publishedAt").
		SetResult(&result).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cms articles: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("cms returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return result.Contents, nil
}

// FetchCMSArticleByID fetches one CMS article by content id.
func FetchCMSArticleByID(id string) (*CMSArticle, error) {
	endpoint, err := cmsEndpoint()
	if err != nil {
		return nil, err
	}

	client := resty.New()

	var article CMSArticle
	resp, err := client.R().
		SetHeader("X-MICROCMS-API-KEY", config.AppConfig.MicroCMSAPIKey).
		SetResult(&article).
		Get(endpoint + "/" + id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cms article %s: %w", id, err)
	}
	if resp.StatusCode() == 404 {
		return nil, ErrCMSArticleNotFound
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("cms returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return &article, nil
}

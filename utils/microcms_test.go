package utils

import (
	"testing"

	"kabulearn/config"

	"github.com/stretchr/testify/assert"
)

func TestFetchCMSArticles_Unconfigured(t *testing.T) {
	config.AppConfig = &config.Config{}

	_, err := FetchCMSArticles()
	assert.Error(t, err)

	_, err = FetchCMSArticleByID("abc")
	assert.Error(t, err)
}

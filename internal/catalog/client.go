package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orthanc/internal/domain"
	apperrors "orthanc/internal/errors"
)

// Client calls the external product catalog service. The catalog may
// return fewer products than requested; callers must check completeness.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type validateProductsRequest struct {
	IDs []int `json:"ids"`
}

type productRecord struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (c *Client) ValidateProducts(ctx context.Context, ids []int) ([]domain.Product, error) {
	body, err := json.Marshal(validateProductsRequest{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("encoding validate request: %w", err)
	}

	url := c.baseURL + "/products/validate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building validate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewDependencyError("product catalog unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewDependencyError(
			fmt.Sprintf("product catalog returned status %d: %s", resp.StatusCode, payload), nil)
	}

	var records []productRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, apperrors.NewDependencyError("decoding product catalog response", err)
	}

	products := make([]domain.Product, len(records))
	for i, rec := range records {
		products[i] = domain.Product{
			ID:    rec.ID,
			Name:  rec.Name,
			Price: rec.Price,
		}
	}

	return products, nil
}

package contractpdf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/guburchardt/kingsystem-backoffice/util/httpx"
)

type httpRepo struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTP(baseURL, apiKey string) Repo {
	return &httpRepo{baseURL: baseURL, apiKey: apiKey, client: httpx.Client()}
}

func (r *httpRepo) RenderContract(ctx context.Context, rentalID int64) ([]byte, error) {
	body, _ := json.Marshal(map[string]any{"rental_id": rentalID})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("contract render failed: %s", resp.Status)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, errors.New("contract renderer: empty response")
	}
	return pdf, nil
}

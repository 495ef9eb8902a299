package openai

import (
	"context"
	"fmt"

	"github.com/matthewmueller/lmtranslate"
)

// Models lists the models the server has available, in server order
func (c *Client) Models(ctx context.Context) ([]*lmtranslate.Model, error) {
	c.log.Debug("openai: listing models", "endpoint", c.endpoint)
	page, err := c.oc.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("openai: listing models: %w", err)
	}
	models := make([]*lmtranslate.Model, 0, len(page.Data))
	for _, m := range page.Data {
		if m.ID == "" {
			return nil, fmt.Errorf("openai: listing models: %w: model without id", lmtranslate.ErrMalformedResponse)
		}
		models = append(models, &lmtranslate.Model{ID: m.ID})
	}
	return models, nil
}

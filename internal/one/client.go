package one

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/tonetui/tone/internal/errdef"
	"github.com/tonetui/tone/internal/logging"
	"github.com/tonetui/tone/internal/resource"
	"github.com/tonetui/tone/internal/version"
)

// Client calls the OpenNebula XML-RPC API. Its methods are safe for
// concurrent use.
type Client struct {
	creds  Credentials
	client *http.Client
	logger logging.Interface
}

func NewClient(creds Credentials, logger logging.Interface) *Client {
	return &Client{
		creds:  creds,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// Endpoint returns the XML-RPC endpoint the client talks to.
func (c *Client) Endpoint() string { return c.creds.Endpoint }

// Username returns the authenticated user.
func (c *Client) Username() string { return c.creds.Username }

// Call performs one XML-RPC round trip. The session auth string is
// prepended to args. The returned string is the response body: the XML
// payload of a pool or object, or the object id echoed back by an action.
func (c *Client) Call(ctx context.Context, method string, args ...any) (string, error) {
	full := append([]any{c.creds.Session()}, args...)
	payload, err := encodeCall(method, full...)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeParse, err, "encoding %s", method)
	}

	c.logger.Debug("calling OpenNebula API", "method", method, "endpoint", c.creds.Endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.creds.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errdef.Wrap(errdef.CodeProvider, err, "building request")
	}
	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("User-Agent", "tone/"+version.Version)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeProvider, err, "calling %s", method)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeProvider, err, "reading response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errdef.New(errdef.CodeProvider, "HTTP request failed: %s", resp.Status)
	}
	body, err := decodeResponse(raw)
	if err != nil {
		c.logger.Error("OpenNebula API call failed", "method", method, "error", err)
		return "", err
	}
	return body, nil
}

// List fetches the pool for kind, flattening each entry into an item with
// its display cells extracted.
func (c *Client) List(ctx context.Context, kind resource.Kind) ([]resource.Item, error) {
	desc := resource.Describe(kind)
	args := make([]any, len(desc.PoolArgs))
	for i, arg := range desc.PoolArgs {
		args[i] = arg
	}
	body, err := c.Call(ctx, desc.PoolMethod, args...)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(body)
	if err != nil {
		return nil, err
	}
	nodes := doc.List(desc.PoolPath)
	items := make([]resource.Item, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, buildItem(kind, desc, node))
	}
	c.logger.Debug("listed pool", "kind", kind, "count", len(items))
	return items, nil
}

// Detail fetches the full document for a single object. Results are never
// cached; the details view always shows a fresh read.
func (c *Client) Detail(ctx context.Context, kind resource.Kind, id string) (*Document, error) {
	desc := resource.Describe(kind)
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, errdef.New(errdef.CodeParse, "malformed resource id %q", id)
	}
	body, err := c.Call(ctx, desc.InfoMethod, n)
	if err != nil {
		return nil, err
	}
	return ParseDocument(body)
}

// InvokeAction submits a state transition for a single object. OpenNebula
// acknowledges the submission immediately; the transition itself runs
// server-side and shows up on a later refresh.
func (c *Client) InvokeAction(ctx context.Context, kind resource.Kind, id string, action resource.Action) error {
	desc := resource.Describe(kind)
	if desc.ActionMethod == "" {
		return errdef.New(errdef.CodeUnsupportedAction, "%s does not support actions", desc.Title)
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return errdef.New(errdef.CodeParse, "malformed resource id %q", id)
	}
	if _, err := c.Call(ctx, desc.ActionMethod, action.RPCName(), n); err != nil {
		return err
	}
	c.logger.Info("submitted action", "action", action.RPCName(), "kind", kind, "id", id)
	return nil
}

func buildItem(kind resource.Kind, desc resource.Descriptor, node *Document) resource.Item {
	item := resource.Item{
		ID:    node.String("ID"),
		Name:  node.String("NAME"),
		State: itemState(kind, node),
		Cells: make(map[string]string, len(desc.Columns)),
	}
	for _, col := range desc.Columns {
		item.Cells[col.Key] = cellValue(col, node, item.State)
	}
	return item
}

// itemState renders the kind's state label. ACTIVE VMs surface their LCM
// state, which is the part an operator actually wants (RUNNING, MIGRATE,
// and so on).
func itemState(kind resource.Kind, node *Document) string {
	code, ok := node.Int("STATE")
	if !ok {
		return node.String("STATE")
	}
	switch kind {
	case resource.Vms:
		if code == vmStateActive {
			if lcm, ok := node.Int("LCM_STATE"); ok {
				return LCMStateLabel(lcm)
			}
		}
		return VMStateLabel(code)
	case resource.Hosts:
		return HostStateLabel(code)
	case resource.Images:
		return ImageStateLabel(code)
	case resource.Datastores:
		return DatastoreStateLabel(code)
	}
	return node.String("STATE")
}

func cellValue(col resource.Column, node *Document, state string) string {
	switch col.Format {
	case resource.FormatState:
		return state
	case resource.FormatSizeMB:
		if mb, ok := node.Int(col.Path); ok {
			return formatSizeMB(mb)
		}
		return node.String(col.Path)
	case resource.FormatCount:
		return strconv.Itoa(node.Count(col.Path))
	default:
		return node.String(col.Path)
	}
}

// formatSizeMB renders an OpenNebula megabyte count as a human-readable
// size.
func formatSizeMB(mb int) string {
	const (
		gb = 1024
		tb = gb * 1024
	)
	switch {
	case mb >= tb:
		return fmt.Sprintf("%.1f TB", float64(mb)/float64(tb))
	case mb >= gb:
		return fmt.Sprintf("%.1f GB", float64(mb)/float64(gb))
	default:
		return fmt.Sprintf("%d MB", mb)
	}
}

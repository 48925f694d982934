package poloniex

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	simplejson "github.com/bitly/go-simplejson"
)

const (
	DefaultBaseURL = "https://poloniex.com"

	publicPath  = "/public"
	privatePath = "/tradingApi"
)

// Client calls the Poloniex HTTP API. It is safe for concurrent use.
type Client struct {
	apiKey  string
	secret  []byte
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     func(v ...interface{})
	nonce   NonceFunc
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the exchange host, mostly useful for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets the HTTP client used for every request, nil means a
// default one.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h == nil {
			h = &http.Client{}
		}
		c.http = h
	}
}

// WithTimeout sets the timeout of the underlying HTTP client. The client
// passed to WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLog sets the function used to report diagnostics.
func WithLog(log func(v ...interface{})) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithNonce replaces the clock based nonce source.
func WithNonce(nonce NonceFunc) Option {
	return func(c *Client) {
		c.nonce = nonce
	}
}

// New returns a client. Key and secret may be empty if only public
// commands are going to be called.
func New(apiKey, secret string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		secret:  []byte(secret),
		baseURL: DefaultBaseURL,
		http:    &http.Client{},
		log:     func(v ...interface{}) {},
		nonce:   newClockNonce(time.Now).Next,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		h := *c.http
		h.Timeout = c.timeout
		c.http = &h
	}
	return c
}

// Call sends the command and returns the decoded JSON response. An error
// object sent by the exchange is returned as data, see APIErrorMessage.
func (c *Client) Call(ctx context.Context, command string, params Params) (*simplejson.Json, error) {
	body, err := c.dispatch(ctx, command, params)
	if err != nil {
		return nil, err
	}
	js, err := simplejson.NewJson(body)
	if err != nil {
		return nil, &DecodeError{Command: command, Body: body, Err: err}
	}
	return js, nil
}

// Do sends the command and decodes the response into v. Unlike Call, an
// error object sent by the exchange is returned as *APIError.
func (c *Client) Do(ctx context.Context, command string, params Params, v interface{}) error {
	body, err := c.dispatch(ctx, command, params)
	if err != nil {
		return err
	}
	var probe struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && len(probe.Error) > 0 && string(probe.Error) != "null" {
		msg := string(probe.Error)
		_ = json.Unmarshal(probe.Error, &msg)
		return &APIError{Command: command, Message: msg}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &DecodeError{Command: command, Body: body, Err: err}
	}
	return nil
}

// APIErrorMessage returns the error message sent by the exchange, if any.
func APIErrorMessage(js *simplejson.Json) (string, bool) {
	if js == nil {
		return "", false
	}
	v, ok := js.CheckGet("error")
	if !ok {
		return "", false
	}
	msg, err := v.String()
	if err != nil {
		b, _ := v.MarshalJSON()
		msg = string(b)
	}
	return msg, true
}

// Sign returns the hex encoded HMAC-SHA512 of the payload.
func Sign(secret []byte, payload []byte) string {
	mac := hmac.New(sha512.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *Client) dispatch(ctx context.Context, command string, params Params) ([]byte, error) {
	switch Classify(command) {
	case Private:
		return c.private(ctx, command, params)
	case Public:
		return c.public(ctx, command, params)
	default:
		return nil, fmt.Errorf("poloniex: %s: %w", command, ErrNoSuchCommand)
	}
}

func (c *Client) private(ctx context.Context, command string, params Params) ([]byte, error) {
	if len(c.apiKey) < 2 || len(c.secret) < 2 {
		c.log("poloniex: an api key and secret are needed for", command)
		return nil, fmt.Errorf("poloniex: %s: %w", command, ErrMissingCredentials)
	}
	nonce := c.nonce()
	args := append(Params{{Key: "command", Value: command}}, params.without("command", "nonce")...)
	args = append(args, Param{Key: "nonce", Value: nonce})
	payload, err := args.Encode()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+privatePath, bytes.NewBufferString(payload))
	if err != nil {
		return nil, fmt.Errorf("poloniex: couldn't create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Key", c.apiKey)
	req.Header.Set("Sign", Sign(c.secret, []byte(payload)))

	c.log("poloniex:", Private, command, "nonce", strconv.FormatInt(nonce, 10))
	return c.do(req, command)
}

func (c *Client) public(ctx context.Context, command string, params Params) ([]byte, error) {
	query := command
	if extra := params.without("command"); len(extra) > 0 {
		q, err := append(Params{{Key: "command", Value: command}}, extra...).Encode()
		if err != nil {
			return nil, err
		}
		query = q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+publicPath+"?"+query, nil)
	if err != nil {
		return nil, fmt.Errorf("poloniex: couldn't create request: %w", err)
	}

	c.log("poloniex:", Public, command)
	return c.do(req, command)
}

func (c *Client) do(req *http.Request, command string) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Command: command, Err: err}
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Command: command, StatusCode: resp.StatusCode, Err: err}
	}
	// Non 2xx responses carrying JSON are api errors and are returned as data
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if !json.Valid(body) {
			return nil, &TransportError{Command: command, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
		}
	}
	return body, nil
}

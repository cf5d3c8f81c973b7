// Package fetch carrega JSON remoto tentando uma lista fixa de estratégias: requisição
// direta, requisição simples e, se habilitados, dois relays públicos de CORS.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"autos-converter/internal/core/jsonvalue"
	"autos-converter/internal/domain"

	"go.uber.org/zap"
)

const maxBodyBytes = 32 << 20

// Options configura o Fetcher.
type Options struct {
	Timeout         time.Duration
	UseProxies      bool
	CorsAnywhereURL string
	AllOriginsURL   string
	Client          *http.Client
	Logger          *zap.Logger
}

type strategy struct {
	name    string
	relay   bool
	request func(ctx context.Context, target string) (*http.Request, error)
	decode  func(body []byte) ([]byte, error)
}

// Fetcher busca documentos JSON por URL.
type Fetcher struct {
	client     *http.Client
	logger     *zap.Logger
	strategies []strategy
}

// New cria um Fetcher. Sem Client, usa um http.Client com o timeout informado.
func New(opts Options) *Fetcher {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Fetcher{client: client, logger: logger}
	f.strategies = append(f.strategies,
		strategy{
			name: "direta",
			request: getWith(func(target string) string { return target }, map[string]string{
				"Accept":       "application/json",
				"Content-Type": "application/json",
			}),
			decode: identity,
		},
		strategy{
			name:    "simples",
			request: getWith(func(target string) string { return target }, map[string]string{"Accept": "application/json"}),
			decode:  identity,
		},
	)
	if opts.UseProxies && opts.CorsAnywhereURL != "" {
		base := opts.CorsAnywhereURL
		f.strategies = append(f.strategies, strategy{
			name:  "cors-anywhere",
			relay: true,
			request: getWith(func(target string) string { return base + target }, map[string]string{
				"X-Requested-With": "XMLHttpRequest",
			}),
			decode: identity,
		})
	}
	if opts.UseProxies && opts.AllOriginsURL != "" {
		base := opts.AllOriginsURL
		f.strategies = append(f.strategies, strategy{
			name:  "allorigins",
			relay: true,
			request: getWith(func(target string) string {
				return base + "?url=" + url.QueryEscape(target)
			}, nil),
			decode: allOriginsContents,
		})
	}
	return f
}

// Fetch percorre as estratégias em ordem e devolve o primeiro documento JSON válido.
// Quando todas falham, o erro retornado é um *Error classificado pela última falha relevante.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (jsonvalue.Value, error) {
	target := strings.TrimSpace(rawURL)
	if target == "" {
		return jsonvalue.Value{}, fmt.Errorf("%w: URL não fornecida", domain.ErrInvalidFormat)
	}
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return jsonvalue.Value{}, fmt.Errorf("%w: URL inválida: %s", domain.ErrInvalidFormat, target)
	}

	var lastErr error
	for _, s := range f.strategies {
		if err := ctx.Err(); err != nil {
			return jsonvalue.Value{}, &Error{Reason: ReasonConnectivity, Err: err}
		}
		doc, err := f.try(ctx, s, target)
		if err == nil {
			f.logger.Debug("JSON remoto carregado", zap.String("estrategia", s.name), zap.String("url", target))
			return doc, nil
		}
		f.logger.Warn("estratégia de carregamento falhou",
			zap.String("estrategia", s.name), zap.String("url", target), zap.Error(err))

		var se *statusError
		if s.relay && errors.As(err, &se) {
			continue
		}
		lastErr = err
	}
	return jsonvalue.Value{}, classify(lastErr)
}

func (f *Fetcher) try(ctx context.Context, s strategy, target string) (jsonvalue.Value, error) {
	req, err := s.request(ctx, target)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return jsonvalue.Value{}, &statusError{Code: resp.StatusCode, Status: resp.Status}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return jsonvalue.Value{}, err
	}
	payload, err := s.decode(body)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	doc, err := jsonvalue.Parse(payload)
	if err != nil {
		return jsonvalue.Value{}, &invalidJSONError{Err: err}
	}
	return doc, nil
}

func getWith(build func(string) string, headers map[string]string) func(context.Context, string) (*http.Request, error) {
	return func(ctx context.Context, target string) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, build(target), nil)
		if err != nil {
			return nil, err
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	}
}

func identity(body []byte) ([]byte, error) { return body, nil }

// allOriginsContents extrai o documento original do envelope {"contents": "..."}.
func allOriginsContents(body []byte) ([]byte, error) {
	var envelope struct {
		Contents *string `json:"contents"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &invalidJSONError{Err: err}
	}
	if envelope.Contents == nil {
		return nil, &invalidJSONError{Err: errors.New("resposta do relay sem o campo contents")}
	}
	return []byte(*envelope.Contents), nil
}

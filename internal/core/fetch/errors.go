package fetch

import (
	"fmt"
	"net/http"

	"autos-converter/internal/domain"
)

// Reason classifica a falha final do carregamento.
type Reason string

const (
	ReasonConnectivity Reason = "conexao"
	ReasonNotFound     Reason = "nao_encontrado"
	ReasonForbidden    Reason = "acesso_negado"
	ReasonServer       Reason = "erro_servidor"
	ReasonInvalidJSON  Reason = "json_invalido"
	ReasonOther        Reason = "outro"
)

// Error é a falha de Fetch depois de esgotadas as estratégias.
type Error struct {
	Reason Reason
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Reason {
	case ReasonConnectivity:
		return "Erro de CORS ou conexão. A URL pode não permitir acesso externo. " +
			"Tente usar a opção 'Colar JSON' para inserir os dados manualmente."
	case ReasonNotFound:
		return "URL não encontrada (404). Verifique se o link está correto."
	case ReasonForbidden:
		return "Acesso negado (403). A URL pode precisar de autenticação."
	case ReasonServer:
		return fmt.Sprintf("Erro interno do servidor (%d). Tente novamente mais tarde.", e.Status)
	default:
		if e.Err == nil {
			return "Erro desconhecido ao carregar JSON"
		}
		return fmt.Sprintf("Erro ao carregar JSON: %v", e.Err)
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrFetch}
	}
	return []error{domain.ErrFetch, e.Err}
}

type statusError struct {
	Code   int
	Status string
}

func (e *statusError) Error() string { return "HTTP " + e.Status }

type invalidJSONError struct{ Err error }

func (e *invalidJSONError) Error() string { return "resposta não é um JSON válido: " + e.Err.Error() }

func (e *invalidJSONError) Unwrap() error { return e.Err }

// classify converte a última falha em *Error.
func classify(err error) *Error {
	switch e := err.(type) {
	case nil:
		return &Error{Reason: ReasonOther}
	case *statusError:
		switch {
		case e.Code == http.StatusNotFound:
			return &Error{Reason: ReasonNotFound, Status: e.Code, Err: err}
		case e.Code == http.StatusForbidden:
			return &Error{Reason: ReasonForbidden, Status: e.Code, Err: err}
		case e.Code >= 500:
			return &Error{Reason: ReasonServer, Status: e.Code, Err: err}
		default:
			return &Error{Reason: ReasonOther, Status: e.Code, Err: err}
		}
	case *invalidJSONError:
		return &Error{Reason: ReasonInvalidJSON, Err: err}
	default:
		return &Error{Reason: ReasonConnectivity, Err: err}
	}
}

package api

// User-facing messages, in Portuguese like the disclosure text itself.
const (
	msgNoData          = "Dados não fornecidos"
	msgInvalidAmount   = "usd_amount deve ser um número positivo"
	msgInvalidFormat   = "date deve estar no formato DDMMYYYY (ex: 07082025)"
	msgInvalidDate     = "Data inválida: "
	msgInternal        = "Erro interno: "
	msgInternalGeneric = "Erro interno do servidor"
	msgNotFound        = "Endpoint não encontrado"
	msgNotAllowed      = "Método não permitido"

	sourceName = "SGS - Banco Central do Brasil"
)

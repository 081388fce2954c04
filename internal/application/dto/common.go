package dto

// Respuesta es el sobre JSON común de la API: {success, data|id|message, error}.
// Lo produce el backend y lo consume el cliente de stock tal cual; el
// controlador de edición solo mira el booleano success.
type Respuesta struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	ID      *int64 `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK arma un sobre de éxito con datos.
func OK(data any) Respuesta {
	return Respuesta{Success: true, Data: data}
}

// OKMessage arma un sobre de éxito con solo un mensaje.
func OKMessage(msg string) Respuesta {
	return Respuesta{Success: true, Message: msg}
}

// Created arma el sobre de creación con el id asignado.
func Created(id int64, msg string) Respuesta {
	return Respuesta{Success: true, ID: &id, Message: msg}
}

// Fail arma un sobre de error.
func Fail(msg string) Respuesta {
	return Respuesta{Success: false, Error: msg}
}

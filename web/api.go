package web

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"io"
	"net/http"
	"ssq/ast"
	"ssq/parser"
)

type expressionResponse struct {
	Expression string   `json:"expression"`
	Ast        ast.Expr `json:"ast"`
}

func StartServer(port string) {
	r := initRouter()
	sigolo.Infof("Start server on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func initRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/expression", handleParseExpression).Methods(http.MethodPost)
	return r
}

func handleParseExpression(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")

	queryBytes, err := io.ReadAll(request.Body)
	if err != nil {
		err = errors.Wrap(err, "Error reading HTTP body of request to '/api/expression'")
		sigolo.Errorf("%+v", err)
		writer.WriteHeader(http.StatusInternalServerError)
		_, err = writer.Write([]byte("Error reading HTTP body."))
		if err != nil {
			sigolo.Errorf("Error writing error response: %+v", err)
		}
		return
	}

	queryString := string(queryBytes)
	sigolo.Infof("Expression: %s", queryString)

	expression, err := parser.ParseExpressionString(queryString)
	if err != nil {
		sigolo.Errorf("Error parsing expression: %+v", err)
		writer.WriteHeader(http.StatusBadRequest)
		_, err = writer.Write([]byte(fmt.Sprintf("Error parsing expression: %s", err)))
		if err != nil {
			sigolo.Errorf("Error writing error response: %+v", err)
		}
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(writer).Encode(expressionResponse{
		Expression: expression.String(),
		Ast:        expression,
	})
	if err != nil {
		sigolo.Errorf("Error writing parse result: %+v", err)
		writer.WriteHeader(http.StatusInternalServerError)
	}
}

package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/onia-prep/questgen/internal/container"
	"github.com/onia-prep/questgen/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()
	mux := router.New(router.RouterConfig{
		AIGenHandler:    c.AIGenContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(mux)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	addr := ":" + c.Config.Port
	log.Infof("servidor ouvindo em %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

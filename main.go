package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"auto_blog_generator/config"
	"auto_blog_generator/generator"
	"auto_blog_generator/logging"
	"auto_blog_generator/server"
	"auto_blog_generator/tracing"
)

func main() {
	configPath := flag.String("config", "config/config.json", "path to config.json")
	envPath := flag.String("env", ".env", "path to .env file")
	topic := flag.String("topic", "", "generate a blog for this topic and exit")
	out := flag.String("out", "", "write the generated markdown to a file")
	html := flag.Bool("html", false, "render the generated content as HTML")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	logging.InitLogger(*verbose)
	config.LoadEnv(*envPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	llm, err := buildLLM(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pipeline, err := generator.NewPipeline(llm)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *serve {
		srv, err := server.New(pipeline)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		slog.Info("starting web server", slog.String("addr", listen))
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *topic == "" {
		fmt.Fprintln(os.Stderr, "--topic is required (or use --serve)")
		os.Exit(1)
	}

	ctx := context.Background()
	blog, err := pipeline.Run(ctx, *topic)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	body := blog.Content
	if *html {
		body, err = generator.RenderHTML(blog.Content)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *out != "" {
		if err := os.WriteFile(*out, []byte(body), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		slog.Info("blog written", slog.String("path", *out), slog.String("title", blog.Title))
		return
	}

	fmt.Println(blog.Title)
	fmt.Println()
	fmt.Println(body)
}

// buildLLM selects the model client from config and attaches telemetry
// when a tracing credential is present.
func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return nil, fmt.Errorf("llm config missing; please set llm.provider/model/api_key_env in config")
	}

	var llm generator.LLMClient
	switch cfg.LLM.Provider {
	case "mock":
		llm = generator.MockLLM{}
	case "openai", "groq", "deepseek":
		client, err := generator.NewOpenAILLM(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		llm = client
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}

	if cfg.Tracing != nil && cfg.Tracing.APIKey != "" {
		tracer, err := tracing.New(tracing.Config{
			Endpoint: cfg.Tracing.Endpoint,
			Project:  cfg.Tracing.Project,
			APIKey:   cfg.Tracing.APIKey,
		}, nil)
		if err != nil {
			return nil, err
		}
		llm = tracing.WrapLLM(llm, tracer)
	}

	return llm, nil
}

// Package s3store implementa o object storage dos documentos sobre S3 ou
// qualquer endpoint compatível (Cloudflare R2, MinIO).
package s3store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/config"
)

const defaultSignedURLTTL = time.Hour

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var _ ports.ObjectStorage = (*Gateway)(nil)

// Gateway implementa ports.ObjectStorage
type Gateway struct {
	objects   objectAPI
	presigner presignAPI
	bucket    string
	log       ports.Logger
}

// NewGateway cria o gateway a partir da configuração da aplicação
func NewGateway(ctx context.Context, cfg *config.StorageConfig, log ports.Logger) (*Gateway, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("S3_BUCKET_NAME is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Info("object storage configured",
		"bucket", cfg.Bucket,
		"region", cfg.Region,
		"custom_endpoint", cfg.Endpoint != "",
	)

	return NewGatewayWithClient(client, cfg.Bucket, log), nil
}

// NewGatewayWithClient monta o gateway sobre um cliente S3 já configurado
func NewGatewayWithClient(client *s3.Client, bucket string, log ports.Logger) *Gateway {
	return &Gateway{
		objects:   client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		log:       log,
	}
}

func (g *Gateway) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := g.objects.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(g.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// Delete remove o objeto; objeto inexistente não é erro
func (g *Gateway) Delete(ctx context.Context, key string) error {
	_, err := g.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

func (g *Gateway) SignedURL(ctx context.Context, key string, opts ports.SignOptions) (string, error) {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultSignedURLTTL
	}

	req, err := g.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(g.bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(ContentDisposition(opts.Disposition, opts.Filename)),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign get %s: %w", key, err)
	}
	return req.URL, nil
}

// SignedUploadURL pré-assina um PUT com Content-Type como header assinado e
// devolve os headers que o navegador precisa enviar
func (g *Gateway) SignedUploadURL(ctx context.Context, key, contentType string, ttl time.Duration) (*ports.SignedUpload, error) {
	if ttl <= 0 {
		ttl = defaultSignedURLTTL
	}

	req, err := g.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl), s3.WithPresignClientFromClientOptions(func(o *s3.Options) {
		o.APIOptions = append(o.APIOptions, smithyhttp.SetHeaderValue("Content-Type", contentType))
	}))
	if err != nil {
		return nil, fmt.Errorf("presign put %s: %w", key, err)
	}

	return &ports.SignedUpload{
		URL:     req.URL,
		Method:  req.Method,
		Headers: browserHeaders(req.SignedHeader),
	}, nil
}

// Stat lê tamanho e tipo gravados para a chave
func (g *Gateway) Stat(ctx context.Context, key string) (*ports.ObjectInfo, error) {
	out, err := g.objects.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ports.ErrObjectNotFound
		}
		return nil, fmt.Errorf("head object %s: %w", key, err)
	}
	return &ports.ObjectInfo{
		Size:        aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
	}, nil
}

// browserHeaders achata os headers assinados. Host fica de fora: o
// navegador define sozinho e não aceita sobrescrever.
func browserHeaders(signed http.Header) map[string]string {
	headers := make(map[string]string, len(signed))
	for name, values := range signed {
		if strings.EqualFold(name, "Host") || len(values) == 0 {
			continue
		}
		headers[http.CanonicalHeaderKey(name)] = strings.Join(values, ",")
	}
	return headers
}

// ContentDisposition monta o header devolvido pelo S3 na URL assinada
func ContentDisposition(disposition ports.Disposition, filename string) string {
	if disposition != ports.DispositionAttachment {
		return string(ports.DispositionInline)
	}
	if filename == "" {
		return string(ports.DispositionAttachment)
	}

	encoded := strings.ReplaceAll(url.QueryEscape(filename), "+", "%20")
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, encoded, encoded)
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

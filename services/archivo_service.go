package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/ConteoVivo/ActaMap/methods"
	"github.com/google/uuid"
)

// 上传限制: 只接受acta扫描件 (JPEG, PNG o PDF), 最大10MB
const MaxArchivoSize = 10 << 20

var extensionesPermitidas = []string{".jpg", ".jpeg", ".png", ".pdf"}
var tiposPermitidos = []string{"image/jpeg", "image/png", "application/pdf"}

// ArchivoService 保存acta扫描件到上传目录, 文件名唯一, 只追加不覆盖
type ArchivoService struct {
	RootPath string
}

func NewArchivoService(rootPath string) *ArchivoService {
	absRoot, _ := filepath.Abs(rootPath)
	return &ArchivoService{RootPath: absRoot}
}

// GuardarImagenActa 校验并保存上传文件, 返回相对引用路径 /uploads/actas/<name>
func (s *ArchivoService) GuardarImagenActa(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxArchivoSize {
		return "", &ValidationError{Message: "El archivo supera el tamaño máximo de 10MB"}
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if !methods.IsStringInSlice(ext, extensionesPermitidas) || !methods.IsStringInSlice(contentType, tiposPermitidos) {
		return "", &ValidationError{Message: "Solo se permiten imágenes (JPEG, PNG) o PDF"}
	}

	dir := filepath.Join(s.RootPath, "actas")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", &PersistenceError{Message: "Error al crear directorio de subida", Err: err}
	}

	name := fmt.Sprintf("acta-%s%s", uuid.New().String(), ext)
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", &PersistenceError{Message: "Error al leer el archivo subido", Err: err}
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", &PersistenceError{Message: "Error al guardar el archivo", Err: err}
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", &PersistenceError{Message: "Error al guardar el archivo", Err: err}
	}

	return "/uploads/actas/" + name, nil
}

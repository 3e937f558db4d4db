package certificate

import "time"

type CertificateContainer struct {
	Handler   *Handler
	Assembler *Assembler
	Renderer  Renderer
}

func NewCertificateContainer(sessions SessionReader, total int) *CertificateContainer {
	assembler := NewAssembler(sessions, total, time.Now)
	renderer := NewPDFRenderer()

	return &CertificateContainer{
		Handler:   NewHandler(assembler, renderer),
		Assembler: assembler,
		Renderer:  renderer,
	}
}

// token emite un JWT de desarrollo firmado con JWT_SECRET. La emisión real la hace el
// servicio de identidad; esta herramienta solo sirve para probar la API en local.
//
// Uso: go run ./cmd/token -user <id> -company <id> -role admin|bodeguero|despacho
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/logistica-api/pkg/config"
	"github.com/jhoicas/logistica-api/pkg/jwt"
)

func main() {
	userID := flag.String("user", "dev-user", "user_id del token")
	companyID := flag.String("company", "", "company_id del token")
	role := flag.String("role", jwt.RoleAdmin, "rol: admin, bodeguero o despacho")
	flag.Parse()

	switch *role {
	case jwt.RoleAdmin, jwt.RoleBodeguero, jwt.RoleDespacho:
	default:
		fmt.Fprintf(os.Stderr, "rol desconocido %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET vacío")
		os.Exit(1)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *userID, *companyID, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}

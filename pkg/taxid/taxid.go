// Package taxid da formato canónico (con puntuación) a identificadores tributarios
// por país. Es una utilidad de presentación: la validación de formato vive en el
// registro de países y nunca reformatea la entrada.
package taxid

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnsupportedCountry el país no tiene formateador de identificador tributario.
var ErrUnsupportedCountry = errors.New("taxid: país sin formato de identificador")

// pesos para el cálculo del dígito de verificación NIT (Orden Administrativa 4 de 1989, DIAN).
// Se aplican a los 9 primeros dígitos del NIT, de izquierda a derecha.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// Format convierte la entrada cruda del usuario al formato canónico del país.
// Ejemplos: BR "12345678000190" -> "12.345.678/0001-90"; CO "900123456" -> "900.123.456-8".
func Format(countryCode, raw string) (string, error) {
	switch countryCode {
	case "BR":
		return formatDigits(raw, 14, "##.###.###/####-##")
	case "US":
		return formatDigits(raw, 9, "##-#######")
	case "AR":
		return formatDigits(raw, 11, "##-########-#")
	case "PT":
		return formatDigits(raw, 9, "#########")
	case "CO":
		return formatNIT(raw)
	case "MX":
		return formatRFC(raw), nil
	case "CL":
		return formatRUT(raw)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCountry, countryCode)
	}
}

// ComputeNITVerificationDigit calcula el dígito de verificación (módulo 11 DIAN)
// para los 9 primeros dígitos del NIT.
func ComputeNITVerificationDigit(nit string) (byte, error) {
	digits := extractDigits(nit)
	if len(digits) < 9 {
		return 0, fmt.Errorf("taxid: se requieren al menos 9 dígitos para calcular el dígito de verificación, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits[:9] {
		sum += int(d-'0') * nitWeights[i]
	}
	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return byte('0' + remainder), nil
	}
	return byte('0' + (11 - remainder)), nil
}

// formatNIT acepta 9 dígitos (calcula el DV) o 10 dígitos (verifica el DV recibido).
func formatNIT(raw string) (string, error) {
	digits := extractDigits(raw)
	if len(digits) != 9 && len(digits) != 10 {
		return "", fmt.Errorf("taxid: NIT debe tener 9 o 10 dígitos, se encontraron %d", len(digits))
	}
	expected, err := ComputeNITVerificationDigit(string(digits))
	if err != nil {
		return "", err
	}
	if len(digits) == 10 && digits[9] != expected {
		return "", fmt.Errorf("taxid: dígito de verificación del NIT inválido: esperado %c, recibido %c", expected, digits[9])
	}
	base := string(digits[:9])
	return fmt.Sprintf("%s.%s.%s-%c", base[0:3], base[3:6], base[6:9], expected), nil
}

func formatRFC(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '&' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatRUT separa miles en el cuerpo y deja el dígito verificador (0-9 o K) tras un guion.
func formatRUT(raw string) (string, error) {
	var chars []rune
	for _, r := range strings.ToUpper(raw) {
		if unicode.IsDigit(r) || r == 'K' {
			chars = append(chars, r)
		}
	}
	if len(chars) < 8 || len(chars) > 9 {
		return "", fmt.Errorf("taxid: RUT debe tener 8 o 9 caracteres, se encontraron %d", len(chars))
	}
	body, dv := chars[:len(chars)-1], chars[len(chars)-1]
	for _, r := range body {
		if r == 'K' {
			return "", fmt.Errorf("taxid: RUT con cuerpo inválido")
		}
	}
	var b strings.Builder
	for i, r := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte('-')
	b.WriteRune(dv)
	return b.String(), nil
}

// formatDigits aplica una máscara donde '#' es un dígito.
func formatDigits(raw string, n int, mask string) (string, error) {
	digits := extractDigits(raw)
	if len(digits) != n {
		return "", fmt.Errorf("taxid: se esperaban %d dígitos, se encontraron %d", n, len(digits))
	}
	out := make([]byte, 0, len(mask))
	i := 0
	for j := 0; j < len(mask); j++ {
		if mask[j] == '#' {
			out = append(out, digits[i])
			i++
			continue
		}
		out = append(out, mask[j])
	}
	return string(out), nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return out
}

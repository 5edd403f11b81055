package hybrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTypes_VariableAnnotations(t *testing.T) {
	in := "const amount: string = '1.5';\nlet n: number = 2;\nvar ok: boolean = true;"
	out := StripTypes(in)
	assert.Contains(t, out, "const amount = '1.5';")
	assert.Contains(t, out, "let n = 2;")
	assert.Contains(t, out, "var ok = true;")
	assert.NotContains(t, out, ": string")
	assert.NotContains(t, out, ": number")
}

func TestStripTypes_AsCasts(t *testing.T) {
	in := "await page.getByTestId('amount').fill(amount as string);"
	assert.Equal(t, "await page.getByTestId('amount').fill(amount);", StripTypes(in))

	in = "const v = resp as Api.TokenInfo;"
	assert.Equal(t, "const v = resp;", StripTypes(in))
}

func TestStripTypes_CallSiteGenerics(t *testing.T) {
	in := "const title = await page.evaluate<string>(() => document.title);"
	assert.Equal(t, "const title = await page.evaluate(() => document.title);", StripTypes(in))
}

func TestStripTypes_StringsUntouched(t *testing.T) {
	in := "await page.getByText('Sign in as admin').click();"
	assert.Equal(t, in, StripTypes(in))

	in = `await page.getByTestId('note').fill("type: string = odd");`
	assert.Equal(t, in, StripTypes(in))
}

func TestStripTypes_CommentsUntouched(t *testing.T) {
	in := "// keep as is: number\nawait page.goto('x');"
	assert.Equal(t, in, StripTypes(in))
}

func TestStripTypes_PlainJavaScriptUnchanged(t *testing.T) {
	in := "await page.goto('https://x.test');\nawait page.getByRole('button', { name: 'Swap' }).click();"
	assert.Equal(t, in, StripTypes(in))
}

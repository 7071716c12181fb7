//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Notify displays a toast notification using the Windows notification center.
func Notify(title, body string, opts Options) error {
	script := fmt.Sprintf(`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; `+
		`$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02); `+
		`$texts = $template.GetElementsByTagName("text"); `+
		`$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; `+
		`$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; `+
		`$toast = [Windows.UI.Notifications.ToastNotification]::new($template); `+
		`[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast);`,
		psQuote(title), psQuote(body), psQuote(opts.appName()))
	return exec.Command("powershell.exe", "-NoProfile", "-Command", script).Run()
}

package templates

// Entity template for the table entity
const Entity = FileHeader + `package {{.Package.Entity}};

import java.io.Serializable;
{{- if .Table.HasDate}}
import java.util.Date;
{{- end}}
{{- if .Table.HasBigDecimal}}
import java.math.BigDecimal;
{{- end}}

import com.baomidou.mybatisplus.annotations.IdType;
import com.baomidou.mybatisplus.annotations.TableField;
import com.baomidou.mybatisplus.annotations.TableId;
import com.baomidou.mybatisplus.annotations.TableName;

/**
 * <p>
 * {{if .Table.Comment}}{{.Table.Comment}}{{else}}{{.Table.Name}}{{end}}
 * </p>
 *
 * @author {{.Author}}
 * @since {{.Date}}
 */
@TableName("{{.Table.Name}}")
public class {{.Entity}} implements Serializable {

	private static final long serialVersionUID = 1L;
{{range .Table.Fields}}
{{- if .Comment}}
	/** {{.Comment}} */
{{- end}}
{{- if .KeyFlag}}
	@TableId(value = "{{.Name}}", type = IdType.{{$.IDGenType}})
{{- else if ne .Name .PropertyName}}
	@TableField(value = "{{.Name}}")
{{- end}}
	private {{.PropertyType}} {{.PropertyName}};
{{end}}
{{- range .Table.Fields}}
	public {{.PropertyType}} get{{capitalFirst .PropertyName}}() {
		return this.{{.PropertyName}};
	}

	public void set{{capitalFirst .PropertyName}}({{.PropertyType}} {{.PropertyName}}) {
		this.{{.PropertyName}} = {{.PropertyName}};
	}
{{end}}
	/* column names */
{{- range .Table.Fields}}
	public static final String {{screamSnake .PropertyName}} = "{{.Name}}";
{{- end}}
}
`

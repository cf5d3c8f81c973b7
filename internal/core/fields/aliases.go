package fields

import "autos-converter/internal/core/jsonvalue"

// Name identifica um campo semântico de veículo vindo de JSON.
type Name string

// Campos semânticos conhecidos.
const (
	Modelo            Name = "modelo"
	Versao            Name = "versao"
	Marca             Name = "marca"
	DataCompra        Name = "dataCompra"
	DataVenda         Name = "dataVenda"
	ValorCompra       Name = "valorCompra"
	ValorVenda        Name = "valorVenda"
	Fornecedor        Name = "fornecedor"
	CpfCnpjFornecedor Name = "cpfCnpjFornecedor"
	Cliente           Name = "cliente"
	CpfCnpjCliente    Name = "cpfCnpjCliente"
	Combustivel       Name = "combustivel"
	Tipo              Name = "tipo"
	Chassi            Name = "chassi"
	Renavam           Name = "renavam"
	NumeroMotor       Name = "numeroMotor"
	AnoFabricacao     Name = "anoFabricacao"
	AnoModelo         Name = "anoModelo"
	Cor               Name = "cor"
	Placa             Name = "placa"
	Km                Name = "km"
	Portas            Name = "portas"
	Cambio            Name = "cambio"
	CodigoFipe        Name = "codigoFipe"
	ValorFipe         Name = "valorFipe"
	Opcionais         Name = "opcionais"
)

// aliasTable lista, por campo, as grafias aceitas em ordem de prioridade. Somente leitura.
var aliasTable = map[Name][]string{
	Modelo: {
		"modelo", "MODELO", "model", "base_model", "vehicle_model", "titulo", "title", "name",
		"description", "modelName", "car_model", "vehicle_name", "versao",
	},
	Versao: {"versao", "version", "trim", "variant", "grade", "nivel", "complemento"},
	Marca: {
		"marca", "MARCA", "make", "brand", "fabricante", "manufacturer", "makeName", "brandName",
		"vehicle_make", "car_brand",
	},
	DataCompra: {
		"dataCompra", "DATA COMPRA", "data_compra", "date", "created_at", "date_created",
		"dataEntradaEstoque", "data_entrada_estoque", "entrada_estoque",
	},
	DataVenda: {"dataVenda", "DATA VENDA", "data_venda", "date_sold", "sold_date", "dataSaida", "data_saida"},
	ValorCompra: {
		"valorCompra", "VALOR COMPRA", "VALOR_COMPRA", "valor_compra", "purchase_price", "cost_price",
		"buyPrice", "costPrice", "preco_compra", "valor_aquisicao",
	},
	ValorVenda: {
		"valorVenda", "VALOR VENDA", "VALOR_VENDA", "valor_venda", "price", "promotion_price",
		"sale_price", "selling_price", "preco", "valor", "preco_venda", "sellPrice", "salePrice",
	},
	Fornecedor:        {"fornecedor", "FORNECEDOR", "seller"},
	CpfCnpjFornecedor: {"cpfCnpjFornecedor", "CPF/CNPJ FORNECEDOR", "cpf_cnpj_fornecedor", "seller_cnpj"},
	Cliente:           {"cliente", "CLIENTE"},
	CpfCnpjCliente:    {"cpfCnpjCliente", "CPF/CNPJ CLIENTE", "cpf_cnpj_cliente"},
	Combustivel: {
		"combustivel", "COMBUSTIVEL", "fuel", "fuel_type", "tipo_combustivel", "fuelType",
		"combustible", "fuel_kind", "energy_type",
	},
	Tipo: {"tipo", "TIPO", "category", "condition", "vehicle_type", "status"},
	Chassi: {
		"chassi", "CHASSI", "vin", "chassis", "chassis_number", "numero_chassi", "chassisNumber",
		"vehicle_identification_number",
	},
	Renavam: {
		"renavam", "RENAVAM", "registration", "reg_number", "numero_renavam", "renavam_number",
		"vehicle_registration",
	},
	NumeroMotor: {
		"numeroMotor", "NUMERO MOTOR", "engine_number", "motor_number", "motor", "engine", "numero_motor",
	},
	AnoFabricacao: {
		"anoFabricacao", "ANO FAB", "ANO_FAB", "ano_fabricacao", "fabric_year", "year_manufactured",
		"manufacturing_year", "yearManufactured",
	},
	AnoModelo: {
		"anoModelo", "ANO MODELO", "ANO_MODELO", "ano_modelo", "year", "model_year", "modelYear",
		"vehicle_year",
	},
	Cor: {
		"cor", "COR", "color", "colour", "paint_color", "vehicle_color", "car_color", "cor_veiculo",
		"colorName",
	},
	Placa: {
		"placa", "PLACA", "plate", "license_plate", "number_plate", "placa_veiculo", "licensePlate",
		"vehicle_plate", "registration_plate",
	},
	Km: {
		"km", "KM", "quilometragem", "mileage", "odometer", "kilometragem", "milhas", "kilometers",
		"odometry", "distance", "mileage_km", "odometer_reading",
	},
	Portas: {"portas", "PORTAS", "doors", "door_count", "num_doors"},
	Cambio: {"cambio", "CAMBIO", "gear", "transmission", "gearbox"},
	CodigoFipe: {
		"codigoFipe", "CODIGO FIPE", "codigo_fipe", "fipe_code", "fipeCode", "fipe.codigo", "fipe.code",
	},
	ValorFipe: {
		"valorFipe", "VALOR FIPE", "valor_fipe", "fipe_value", "fipePrice", "fipe_price", "fipe.valor",
		"fipe.value", "fipe.preco",
	},
	Opcionais: {
		"opcionais", "OPCIONAIS", "optionals", "options", "acessorios", "accessories", "features",
		"equipamentos",
	},
}

// imageFields são as chaves sondadas, em ordem, por links de imagens.
var imageFields = []string{
	"linkImagens", "link_imagens", "imagens", "images", "fotos", "photos", "pictures", "gallery",
	"galeria", "image_url", "image_urls", "foto_url", "photo_url", "picture_url", "main_image",
	"thumbnail", "media", "attachments",
}

// Get extrai o campo semântico do registro usando a tabela de apelidos.
func Get(record jsonvalue.Value, name Name) string {
	return Extract(record, aliasTable[name])
}
